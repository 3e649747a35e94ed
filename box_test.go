package mot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxCorners(t *testing.T) {

	b := NewBox(10, 20, 30, 40)

	assert.Equal(t, float32(10), b.TLX())
	assert.Equal(t, float32(20), b.TLY())
	assert.Equal(t, float32(40), b.BRX())
	assert.Equal(t, float32(60), b.BRY())
	assert.Equal(t, image.Pt(25, 40), b.Center())
}

func TestBoxRect(t *testing.T) {

	// fractional boxes expand outwards to whole pixels
	b := NewBox(10.4, 20.6, 5.2, 5.2)
	assert.Equal(t, image.Rect(10, 20, 16, 26), b.Rect())

	b = NewBox(1, 2, 3, 4)
	assert.Equal(t, image.Rect(1, 2, 4, 6), b.Rect())
}

func TestBoxLerp(t *testing.T) {

	a := NewBox(0, 0, 10, 10)
	b := NewBox(10, 20, 20, 30)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 5, mid.X, 1e-5)
	assert.InDelta(t, 10, mid.Y, 1e-5)
	assert.InDelta(t, 15, mid.W, 1e-5)
	assert.InDelta(t, 20, mid.H, 1e-5)
}

func TestBoxIoU(t *testing.T) {

	a := NewBox(0, 0, 10, 10)

	assert.InDelta(t, 1.0, a.IoU(a), 1e-5)
	assert.Equal(t, float32(0), a.IoU(NewBox(20, 20, 5, 5)))

	// half overlap
	b := NewBox(5, 0, 10, 10)
	assert.InDelta(t, 50.0/150.0, a.IoU(b), 1e-5)
}
