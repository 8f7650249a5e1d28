package metadata

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const (
	tagDateTime         = 0x0132
	tagDateTimeOriginal = 0x9003
)

// exifTIFF builds a little-endian TIFF block with one IFD of ASCII tags.
func exifTIFF(fields map[uint16]string) []byte {
	tags := make([]uint16, 0, len(fields))
	for tag := range fields {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	le := binary.LittleEndian
	var head, data bytes.Buffer
	head.WriteString("II")
	binary.Write(&head, le, uint16(42))
	binary.Write(&head, le, uint32(8))
	binary.Write(&head, le, uint16(len(tags)))

	dataOff := uint32(8 + 2 + 12*len(tags) + 4)
	for _, tag := range tags {
		val := append([]byte(fields[tag]), 0)
		binary.Write(&head, le, tag)
		binary.Write(&head, le, uint16(2)) // ASCII
		binary.Write(&head, le, uint32(len(val)))
		if len(val) <= 4 {
			padded := make([]byte, 4)
			copy(padded, val)
			head.Write(padded)
			continue
		}
		binary.Write(&head, le, dataOff+uint32(data.Len()))
		data.Write(val)
	}
	binary.Write(&head, le, uint32(0)) // no next IFD

	return append(head.Bytes(), data.Bytes()...)
}

// cyclicTIFF is a corrupt TIFF whose IFD chain runs 8 -> 16 -> 32 -> 16.
const cyclicTIFF = "II*\x00\b\x00\x00\x00\x02\x0000\x02\x00 \x00\x00\x00 \x00\x00\x00" +
	"\x03\x90\x02\x00\x14\x00\x00\x001\x00\x00\x00\x10\x00\x00\x000000\xff0000D" +
	"00000000000000000000\xff "

// ifdChain builds a little-endian TIFF block of n empty IFDs laid out back to
// back. The last IFD points at last, 0 ending the chain.
func ifdChain(n int, last uint32) []byte {
	le := binary.LittleEndian
	var b bytes.Buffer
	b.WriteString("II")
	binary.Write(&b, le, uint16(42))
	binary.Write(&b, le, uint32(8))
	for i := 0; i < n; i++ {
		binary.Write(&b, le, uint16(0))
		next := uint32(8 + 6*(i+1))
		if i == n-1 {
			next = last
		}
		binary.Write(&b, le, next)
	}
	return b.Bytes()
}

// writeExifJPEG writes a small JPEG whose APP1 segment carries fields.
func writeExifJPEG(t *testing.T, path string, fields map[uint16]string) {
	t.Helper()
	writeJPEGWithTIFF(t, path, exifTIFF(fields))
}

// writeJPEGWithTIFF writes a small JPEG with block as its EXIF APP1 payload.
func writeJPEGWithTIFF(t *testing.T, path string, block []byte) {
	t.Helper()

	var img bytes.Buffer
	if err := jpeg.Encode(&img, image.NewGray(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	payload := append([]byte("Exif\x00\x00"), block...)
	var seg bytes.Buffer
	seg.Write([]byte{0xFF, 0xE1})
	binary.Write(&seg, binary.BigEndian, uint16(len(payload)+2))
	seg.Write(payload)

	raw := img.Bytes()
	out := make([]byte, 0, len(raw)+seg.Len())
	out = append(out, raw[:2]...) // SOI
	out = append(out, seg.Bytes()...)
	out = append(out, raw[2:]...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
