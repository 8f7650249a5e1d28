package processor

import (
	"image"
	"image/color"
	"image/draw"
)

// newCanvas returns a drawable copy of src with the same bounds and, where the
// type is drawable, the same concrete pixel type. Other types are copied onto
// an RGBA canvas and converted back by matchFormat.
func newCanvas(src image.Image) draw.Image {
	b := src.Bounds()

	var dst draw.Image
	switch s := src.(type) {
	case *image.RGBA:
		dst = image.NewRGBA(b)
	case *image.NRGBA:
		dst = image.NewNRGBA(b)
	case *image.RGBA64:
		dst = image.NewRGBA64(b)
	case *image.NRGBA64:
		dst = image.NewNRGBA64(b)
	case *image.Gray:
		dst = image.NewGray(b)
	case *image.Gray16:
		dst = image.NewGray16(b)
	case *image.CMYK:
		dst = image.NewCMYK(b)
	case *image.Paletted:
		dst = image.NewPaletted(b, append(color.Palette(nil), s.Palette...))
	default:
		dst = image.NewRGBA(b)
	}

	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// matchFormat converts canvas back to the pixel type of src when newCanvas
// had to substitute RGBA.
func matchFormat(canvas draw.Image, src image.Image) image.Image {
	if s, ok := src.(*image.YCbCr); ok {
		return toYCbCr(canvas, s.SubsampleRatio)
	}
	return canvas
}

func toYCbCr(src image.Image, ratio image.YCbCrSubsampleRatio) *image.YCbCr {
	b := src.Bounds()
	dst := image.NewYCbCr(b, ratio)
	rgba, isRGBA := src.(*image.RGBA)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var r, g, bl uint8
			if isRGBA {
				c := rgba.RGBAAt(x, y)
				r, g, bl = c.R, c.G, c.B
			} else {
				r32, g32, b32, _ := src.At(x, y).RGBA()
				r, g, bl = uint8(r32>>8), uint8(g32>>8), uint8(b32>>8)
			}
			yy, cb, cr := color.RGBToYCbCr(r, g, bl)
			dst.Y[dst.YOffset(x, y)] = yy
			// Subsampled chroma: the last pixel of each block wins.
			ci := dst.COffset(x, y)
			dst.Cb[ci] = cb
			dst.Cr[ci] = cr
		}
	}
	return dst
}
