package metadata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Nikon v3 notes are decoded with tiff.Decode, which only detects an IFD
	// pointing at itself, so only the Canon parser is registered.
	exif.RegisterParsers(mknote.Canon)
}

const (
	FieldDateTimeOriginal = string(exif.DateTimeOriginal)
	FieldDateTime         = string(exif.DateTime)
)

// Bundle is the metadata read from one image: EXIF string fields by name plus
// the filesystem modification time seen when the file was read.
type Bundle struct {
	Fields       map[string]string
	FileModified time.Time
}

func (b Bundle) Field(name string) (string, bool) {
	v, ok := b.Fields[name]
	return v, ok && v != ""
}

// Reader extracts a Bundle from an image file.
type Reader interface {
	Read(path string) (Bundle, error)
}

// ExifReader reads EXIF with goexif. A file without (or with unparsable) EXIF
// still yields a bundle carrying its modification time. The TIFF block is
// checked with checkTIFF before goexif sees it.
type ExifReader struct{}

func (ExifReader) Read(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Bundle{}, err
	}

	b := Bundle{
		Fields:       make(map[string]string),
		FileModified: info.ModTime(),
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return b, fmt.Errorf("read %s: %w", path, err)
	}
	block, ok := exifBlock(data)
	if !ok || checkTIFF(block) != nil {
		return b, nil
	}

	x, err := exif.Decode(bytes.NewReader(block))
	if x == nil {
		// No EXIF at all is normal for PNG and many TIFFs.
		return b, nil
	}
	if err != nil && exif.IsCriticalError(err) {
		return b, nil
	}

	if werr := x.Walk(fieldCollector(b.Fields)); werr != nil {
		return b, fmt.Errorf("walk exif: %w", werr)
	}
	return b, nil
}

type fieldCollector map[string]string

func (c fieldCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil || tag.Format() != tiff.StringVal {
		return nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return nil
	}
	c[string(name)] = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	return nil
}
