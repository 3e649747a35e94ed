package render

import (
	"image"

	"github.com/seqview/go-mot"
	"gocv.io/x/gocv"
)

// Trail keeps a history of tracklet box centers used for drawing a motion
// trail behind each box on overlay frames
type Trail struct {
	// size is the maximum number of most recent points kept per tracklet
	size    int
	history map[int][]image.Point
}

// NewTrail returns a new trail history instance.  Size is the maximum
// length of trail to maintain per tracklet.
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[int][]image.Point),
	}
}

// Add records the center points of the given frame's boxes
func (t *Trail) Add(tracks []mot.TrackBox) {

	for _, tb := range tracks {

		pts := append(t.history[tb.ID], tb.Box.Center())

		// discard oldest point beyond history size
		if len(pts) > t.size {
			pts = pts[len(pts)-t.size:]
		}

		t.history[tb.ID] = pts
	}
}

// Draw renders every tracklet's trail onto img as connected line segments
// in the tracklet's palette color
func (t *Trail) Draw(img *gocv.Mat, thickness int) {

	for id, pts := range t.history {

		clr := TrackColor(id)

		for i := 1; i < len(pts); i++ {
			gocv.Line(img, pts[i-1], pts[i], clr, thickness)
		}
	}
}
