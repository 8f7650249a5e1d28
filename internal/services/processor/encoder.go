package processor

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/image-datestamp/pkg/utils"
)

func (p *ImageProcessor) encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return imaging.Encode(w, img, imaging.PNG)
	case "tiff":
		return imaging.Encode(w, img, imaging.TIFF)
	default:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(p.jpegQuality))
	}
}

// saveImage writes img to path, choosing the encoder from the extension.
// An existing file is overwritten; a partially written file is removed.
func (p *ImageProcessor) saveImage(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	format := utils.OutputFormat(path)
	if err := p.encodeImage(f, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
