package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// maxIFDs caps the main IFD chain. Real files carry one or two.
const maxIFDs = 16

var exifHeader = []byte("Exif\x00\x00")

// exifBlock returns the TIFF-structured EXIF data held by a TIFF file, a raw
// EXIF blob or the first JPEG APP1 segment that carries one.
func exifBlock(b []byte) ([]byte, bool) {
	if isTIFFHeader(b) {
		return b, true
	}
	if bytes.HasPrefix(b, exifHeader) {
		return b[len(exifHeader):], true
	}

	for i := 0; i+4 <= len(b); i++ {
		if b[i] != 0xFF || b[i+1] != 0xE1 {
			continue
		}
		n := int(binary.BigEndian.Uint16(b[i+2:]))
		end := i + 2 + n
		if n < 2 || end > len(b) {
			continue
		}
		if seg := b[i+4 : end]; bytes.HasPrefix(seg, exifHeader) {
			return seg[len(exifHeader):], true
		}
	}
	return nil, false
}

func isTIFFHeader(b []byte) bool {
	return len(b) >= 4 && (string(b[:4]) == "II*\x00" || string(b[:4]) == "MM\x00*")
}

// checkTIFF walks the main IFD chain of a TIFF block. It rejects chains that
// revisit an offset, run longer than maxIFDs, or leave the block.
func checkTIFF(b []byte) error {
	if !isTIFFHeader(b) || len(b) < 8 {
		return errors.New("tiff: bad header")
	}
	var order binary.ByteOrder = binary.LittleEndian
	if b[0] == 'M' {
		order = binary.BigEndian
	}

	seen := make(map[uint32]bool)
	offset := order.Uint32(b[4:])
	for n := 0; offset != 0; n++ {
		if n == maxIFDs {
			return fmt.Errorf("tiff: more than %d IFDs", maxIFDs)
		}
		if seen[offset] {
			return fmt.Errorf("tiff: IFD loop at offset %d", offset)
		}
		seen[offset] = true

		next, err := nextIFD(b, order, offset)
		if err != nil {
			return err
		}
		offset = next
	}
	return nil
}

// nextIFD checks that the directory at offset fits in b and returns the
// offset of the one after it.
func nextIFD(b []byte, order binary.ByteOrder, offset uint32) (uint32, error) {
	start := uint64(offset)
	size := uint64(len(b))
	if start+2 > size {
		return 0, fmt.Errorf("tiff: IFD offset %d out of range", offset)
	}
	end := start + 2 + 12*uint64(order.Uint16(b[start:]))
	if end+4 > size {
		return 0, fmt.Errorf("tiff: IFD at %d truncated", offset)
	}
	return order.Uint32(b[end:]), nil
}
