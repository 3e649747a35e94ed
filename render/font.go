package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering track ID labels on an image
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around label text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
	}
}
