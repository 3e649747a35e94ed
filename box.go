package mot

import (
	"image"
	"math"
)

// Box represents a bounding box in tlwh (top-left x, top-left y, width,
// height) format
type Box struct {
	X, Y, W, H float32
}

// NewBox creates a new Box with given coordinates
func NewBox(x, y, w, h float32) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// TLX returns the top-left x coordinate of the box
func (b Box) TLX() float32 {
	return b.X
}

// TLY returns the top-left y coordinate of the box
func (b Box) TLY() float32 {
	return b.Y
}

// BRX returns the bottom-right x coordinate of the box
func (b Box) BRX() float32 {
	return b.X + b.W
}

// BRY returns the bottom-right y coordinate of the box
func (b Box) BRY() float32 {
	return b.Y + b.H
}

// Rect converts the box to an image.Rectangle, expanding outwards to the
// nearest whole pixels
func (b Box) Rect() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(b.X))),
		int(math.Floor(float64(b.Y))),
		int(math.Ceil(float64(b.X+b.W))),
		int(math.Ceil(float64(b.Y+b.H))),
	)
}

// Center returns the center point of the box rounded to whole pixels
func (b Box) Center() image.Point {
	return image.Pt(int(b.X+b.W/2), int(b.Y+b.H/2))
}

// Lerp linearly interpolates between this box and other, component-wise.
// t=0 returns the receiver, t=1 returns other.
func (b Box) Lerp(other Box, t float32) Box {
	return Box{
		X: b.X + (other.X-b.X)*t,
		Y: b.Y + (other.Y-b.Y)*t,
		W: b.W + (other.W-b.W)*t,
		H: b.H + (other.H-b.H)*t,
	}
}

// IoU calculates the Intersection over Union with another box
func (b Box) IoU(other Box) float32 {

	iw := float32(math.Min(float64(b.BRX()), float64(other.BRX())) -
		math.Max(float64(b.TLX()), float64(other.TLX())))

	if iw <= 0 {
		return 0
	}

	ih := float32(math.Min(float64(b.BRY()), float64(other.BRY())) -
		math.Max(float64(b.TLY()), float64(other.TLY())))

	if ih <= 0 {
		return 0
	}

	union := b.W*b.H + other.W*other.H - iw*ih
	return iw * ih / union
}
