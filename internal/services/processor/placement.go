package processor

import (
	"image"

	"github.com/phambaophuc/image-datestamp/internal/models"
)

// Margin is the gap in pixels between the text and any edge its anchor touches.
const Margin = 20

// Place computes the text origin for an anchor. y is the text baseline.
// Results are not clamped: text wider than the image yields a negative x.
func Place(imageWidth, imageHeight, textWidth, textHeight int, pos models.Position) image.Point {
	left := Margin
	center := (imageWidth - textWidth) / 2
	right := imageWidth - textWidth - Margin

	top := textHeight + Margin
	middle := (imageHeight + textHeight) / 2
	bottom := imageHeight - Margin

	switch pos {
	case models.PositionTopLeft:
		return image.Pt(left, top)
	case models.PositionTopCenter:
		return image.Pt(center, top)
	case models.PositionTopRight:
		return image.Pt(right, top)
	case models.PositionMiddleLeft:
		return image.Pt(left, middle)
	case models.PositionMiddleRight:
		return image.Pt(right, middle)
	case models.PositionBottomLeft:
		return image.Pt(left, bottom)
	case models.PositionBottomCenter:
		return image.Pt(center, bottom)
	case models.PositionBottomRight:
		return image.Pt(right, bottom)
	default:
		return image.Pt(center, middle)
	}
}
