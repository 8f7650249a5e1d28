package processor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/phambaophuc/image-datestamp/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ShadowOffset is how far the drop shadow sits right of and below the text.
const ShadowOffset = 2

// ShadowColor is always black, whatever the configured font color.
var ShadowColor = color.NRGBA{0, 0, 0, 100}

// Renderer stamps a line of text onto images.
type Renderer struct {
	faces FaceSource
}

func NewRenderer(faces FaceSource) *Renderer {
	return &Renderer{faces: faces}
}

// Render returns a copy of img with text drawn at the anchor in cfg, plus the
// baseline origin it used relative to the image's top-left corner. The copy has
// the same bounds and pixel type as img; img itself is left untouched.
func (r *Renderer) Render(img image.Image, text string, cfg models.WatermarkConfig) (image.Image, image.Point, error) {
	face, err := r.faces.Face(cfg.FontSize)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("failed to load font: %w", err)
	}

	textWidth, textHeight := measureText(face, text)
	bounds := img.Bounds()
	point := Place(bounds.Dx(), bounds.Dy(), textWidth, textHeight, cfg.Position)

	canvas := newCanvas(img)
	origin := bounds.Min.Add(point)

	drawText(canvas, face, text, origin.Add(image.Pt(ShadowOffset, ShadowOffset)), ShadowColor)
	drawText(canvas, face, text, origin, cfg.FontColor)

	return matchFormat(canvas, img), point, nil
}

// measureText returns the advance width of text and the face's line height.
func measureText(face font.Face, text string) (int, int) {
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

func drawText(dst draw.Image, face font.Face, text string, at image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}
