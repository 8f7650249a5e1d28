package processor

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/phambaophuc/image-datestamp/internal/models"
)

var namedColors = map[string]color.RGBA{
	"black":     {0, 0, 0, 255},
	"white":     {255, 255, 255, 255},
	"red":       {255, 0, 0, 255},
	"green":     {0, 255, 0, 255},
	"blue":      {0, 0, 255, 255},
	"yellow":    {255, 255, 0, 255},
	"cyan":      {0, 255, 255, 255},
	"magenta":   {255, 0, 255, 255},
	"gray":      {128, 128, 128, 255},
	"darkgray":  {64, 64, 64, 255},
	"lightgray": {192, 192, 192, 255},
}

// ParseColor accepts a palette name (any case), "r,g,b" or "rgb(r,g,b)".
// Anything it cannot read becomes black.
func ParseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		s = s[len("rgb(") : len(s)-1]
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return models.DefaultFontColor
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return models.DefaultFontColor
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
