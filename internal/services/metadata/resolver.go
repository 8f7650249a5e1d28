package metadata

import (
	"io/fs"
	"os"
	"time"

	"github.com/phambaophuc/image-datestamp/internal/models"
	"go.uber.org/zap"
)

// Source names the step of the fallback chain that produced a date.
type Source string

const (
	SourceOriginal    Source = "original"
	SourceDateTime    Source = "datetime"
	SourceBundleMtime Source = "bundle-mtime"
	SourceFileMtime   Source = "file-mtime"
)

var exifLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006:01:02",
}

// Resolver turns an image's metadata into a CaptureDate. It never fails.
type Resolver struct {
	reader Reader
	stat   func(string) (fs.FileInfo, error)
	logger *zap.Logger
}

func NewResolver(reader Reader, logger *zap.Logger) *Resolver {
	if reader == nil {
		reader = ExifReader{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{reader: reader, stat: os.Stat, logger: logger}
}

func (r *Resolver) Resolve(path string) models.CaptureDate {
	d, _ := r.ResolveWithSource(path)
	return d
}

// ResolveWithSource tries, in order: EXIF DateTimeOriginal, EXIF DateTime,
// the bundle's modification time, then the file's modification time.
func (r *Resolver) ResolveWithSource(path string) (models.CaptureDate, Source) {
	bundle, err := r.reader.Read(path)
	if err != nil {
		r.logger.Debug("Metadata unreadable, using file time",
			zap.String("file", path), zap.Error(err))
		bundle = Bundle{}
	}

	attempts := []struct {
		source Source
		try    func() (time.Time, bool)
	}{
		{SourceOriginal, func() (time.Time, bool) { return parseField(bundle, FieldDateTimeOriginal) }},
		{SourceDateTime, func() (time.Time, bool) { return parseField(bundle, FieldDateTime) }},
		{SourceBundleMtime, func() (time.Time, bool) { return bundle.FileModified, !bundle.FileModified.IsZero() }},
	}

	for _, a := range attempts {
		if t, ok := a.try(); ok {
			r.logger.Debug("Capture date resolved",
				zap.String("file", path), zap.String("source", string(a.source)))
			return models.DateOf(t.In(time.Local)), a.source
		}
	}

	r.logger.Debug("Capture date resolved",
		zap.String("file", path), zap.String("source", string(SourceFileMtime)))
	return models.DateOf(r.fileModTime(path).In(time.Local)), SourceFileMtime
}

// fileModTime falls back to the Unix epoch when the file cannot be stat'ed.
func (r *Resolver) fileModTime(path string) time.Time {
	info, err := r.stat(path)
	if err != nil {
		return time.Unix(0, 0)
	}
	return info.ModTime()
}

func parseField(b Bundle, name string) (time.Time, bool) {
	s, ok := b.Field(name)
	if !ok {
		return time.Time{}, false
	}
	return parseExifTime(s)
}

func parseExifTime(s string) (time.Time, bool) {
	for _, layout := range exifLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
