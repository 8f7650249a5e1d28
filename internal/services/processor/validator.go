package processor

import (
	"fmt"
	"os"
)

// ValidateImage rejects inputs that are not regular files, are empty, or are
// larger than maxSize, before any decoding is attempted.
func ValidateImage(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	size := info.Size()
	if size == 0 {
		return fmt.Errorf("file is empty")
	}
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d", size, maxSize)
	}
	return nil
}
