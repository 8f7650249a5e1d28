package models

import "image/color"

const (
	DefaultFontSize = 24
	DefaultPosition = PositionCenter
)

var DefaultFontColor = color.RGBA{0, 0, 0, 255}

// WatermarkConfig is built once per run and shared read-only by every file.
type WatermarkConfig struct {
	FontSize  int
	FontColor color.RGBA
	Position  Position
}

func DefaultWatermarkConfig() WatermarkConfig {
	return WatermarkConfig{
		FontSize:  DefaultFontSize,
		FontColor: DefaultFontColor,
		Position:  DefaultPosition,
	}
}

// Position is one of the nine anchor zones. The numeric value is the code the
// user types at the prompt.
type Position int

const (
	PositionTopLeft Position = iota + 1
	PositionTopCenter
	PositionTopRight
	PositionMiddleLeft
	PositionCenter
	PositionMiddleRight
	PositionBottomLeft
	PositionBottomCenter
	PositionBottomRight
)

var positionLabels = map[Position]string{
	PositionTopLeft:      "左上",
	PositionTopCenter:    "中上",
	PositionTopRight:     "右上",
	PositionMiddleLeft:   "左中",
	PositionCenter:       "居中",
	PositionMiddleRight:  "右中",
	PositionBottomLeft:   "左下",
	PositionBottomCenter: "中下",
	PositionBottomRight:  "右下",
}

// PositionFromCode maps a 1-9 code to its anchor; anything else is CENTER.
func PositionFromCode(code int) Position {
	p := Position(code)
	if p.Valid() {
		return p
	}
	return PositionCenter
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

func (p Position) Label() string {
	if l, ok := positionLabels[p]; ok {
		return l
	}
	return positionLabels[PositionCenter]
}

func (p Position) String() string {
	switch p {
	case PositionTopLeft:
		return "top-left"
	case PositionTopCenter:
		return "top-center"
	case PositionTopRight:
		return "top-right"
	case PositionMiddleLeft:
		return "middle-left"
	case PositionCenter:
		return "center"
	case PositionMiddleRight:
		return "middle-right"
	case PositionBottomLeft:
		return "bottom-left"
	case PositionBottomCenter:
		return "bottom-center"
	case PositionBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}
