package processor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/image-datestamp/internal/models"
)

const defaultJPEGQuality = 95

type ImageProcessor struct {
	renderer    *Renderer
	jpegQuality int
	maxFileSize int64
}

func NewImageProcessor(faces FaceSource, jpegQuality int, maxFileSize int64) *ImageProcessor {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = defaultJPEGQuality
	}
	return &ImageProcessor{
		renderer:    NewRenderer(faces),
		jpegQuality: jpegQuality,
		maxFileSize: maxFileSize,
	}
}

// ProcessFile stamps text onto the image at src and writes it to dst.
func (p *ImageProcessor) ProcessFile(src, dst, text string, cfg models.WatermarkConfig) error {
	if err := ValidateImage(src, p.maxFileSize); err != nil {
		return err
	}

	img, err := p.decodeImage(src)
	if err != nil {
		return err
	}

	watermarked, _, err := p.renderer.Render(img, text, cfg)
	if err != nil {
		return err
	}

	return p.saveImage(dst, watermarked)
}

// decodeImage keeps the stored orientation so the output has the input's
// dimensions.
func (p *ImageProcessor) decodeImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
