package metadata

import (
	"bytes"
	"testing"
)

func TestCheckTIFF(t *testing.T) {
	tests := []struct {
		name    string
		block   []byte
		wantErr bool
	}{
		{"exif fields", exifTIFF(map[uint16]string{tagDateTime: "2015:08:09 10:11:12"}), false},
		{"three IFDs", ifdChain(3, 0), false},
		{"longest accepted chain", ifdChain(maxIFDs, 0), false},
		{"chain too long", ifdChain(maxIFDs+1, 0), true},
		{"two IFD loop", ifdChain(2, 8), true},
		{"self loop", ifdChain(1, 8), true},
		{"corrupt camera file", []byte(cyclicTIFF), true},
		{"next offset past end", ifdChain(1, 4000), true},
		{"truncated directory", append([]byte("II*\x00\x08\x00\x00\x00"), 0x05, 0x00), true},
		{"short header", []byte("II*\x00"), true},
		{"not tiff", []byte("GIF89a..."), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTIFF(tt.block)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkTIFF err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestExifBlock(t *testing.T) {
	block := exifTIFF(map[uint16]string{tagDateTime: "2015:08:09 10:11:12"})

	if got, ok := exifBlock(block); !ok || !bytes.Equal(got, block) {
		t.Fatalf("tiff file: ok=%v", ok)
	}
	if got, ok := exifBlock(append([]byte("Exif\x00\x00"), block...)); !ok || !bytes.Equal(got, block) {
		t.Fatalf("raw exif: ok=%v", ok)
	}

	// An XMP segment ahead of the EXIF one is skipped.
	var jpg bytes.Buffer
	jpg.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00, 0x07})
	jpg.WriteString("http:")
	jpg.Write([]byte{0xFF, 0xE1, 0x00, byte(2 + 6 + len(block))})
	jpg.WriteString("Exif\x00\x00")
	jpg.Write(block)
	if got, ok := exifBlock(jpg.Bytes()); !ok || !bytes.Equal(got, block) {
		t.Fatalf("jpeg app1: ok=%v", ok)
	}

	if _, ok := exifBlock([]byte{0xFF, 0xD8, 0xFF, 0xE1, 0xFF, 0xFF, 'E'}); ok {
		t.Fatalf("expected no block for a truncated segment")
	}
}
