package mot

import (
	"math"
	"sort"
)

// boxSize is the number of float32 components stored per cell
const boxSize = 4

var absent = float32(math.NaN())

// TrackBox pairs a tracklet ID with its bounding box in one frame
type TrackBox struct {
	ID  int
	Box Box
}

// Array is the tracklet array, a dense 2D table of bounding boxes with one
// row per tracklet and one column per frame.  Rows keep the stable integer
// track IDs assigned by the tracker.  Cells are stored as 4 float32
// components with NaN marking an absent box, but that sentinel never leaks
// out of the accessors: At reports presence explicitly, so a box at (0,0)
// with zero size is still representable.
type Array struct {
	ids       []int
	rowOf     map[int]int
	numFrames int
	data      []float32
}

// NewArray creates an empty tracklet array with the given track IDs and
// frame count.  IDs must be unique.
func NewArray(ids []int, numFrames int) *Array {

	a := &Array{
		ids:       append([]int(nil), ids...),
		rowOf:     make(map[int]int, len(ids)),
		numFrames: numFrames,
		data:      make([]float32, len(ids)*numFrames*boxSize),
	}

	for row, id := range a.ids {
		a.rowOf[id] = row
	}

	for i := range a.data {
		a.data[i] = absent
	}

	return a
}

// NumTracks returns the number of tracklet rows
func (a *Array) NumTracks() int {
	return len(a.ids)
}

// NumFrames returns the number of frame columns
func (a *Array) NumFrames() int {
	return a.numFrames
}

// IDs returns the track IDs in row order
func (a *Array) IDs() []int {
	return append([]int(nil), a.ids...)
}

// HasTrack reports whether a tracklet with the given ID exists
func (a *Array) HasTrack(id int) bool {
	_, ok := a.rowOf[id]
	return ok
}

// MaxID returns the largest track ID in the array, or 0 when empty
func (a *Array) MaxID() int {
	max := 0
	for _, id := range a.ids {
		if id > max {
			max = id
		}
	}
	return max
}

// cell returns the offset of (row, frame) in the backing store
func (a *Array) cell(row, frame int) int {
	return (row*a.numFrames + frame) * boxSize
}

// At returns the box for the given tracklet at the given frame.  The second
// return value is false if the tracklet is absent in that frame or the
// tracklet/frame is unknown.
func (a *Array) At(id, frame int) (Box, bool) {

	row, ok := a.rowOf[id]
	if !ok || frame < 0 || frame >= a.numFrames {
		return Box{}, false
	}

	c := a.cell(row, frame)
	x := a.data[c]

	// NaN marks an absent cell
	if x != x {
		return Box{}, false
	}

	return Box{X: x, Y: a.data[c+1], W: a.data[c+2], H: a.data[c+3]}, true
}

// Set stores a box for the given tracklet at the given frame
func (a *Array) Set(id, frame int, b Box) error {

	row, ok := a.rowOf[id]
	if !ok {
		return ErrUnknownTrack
	}
	if frame < 0 || frame >= a.numFrames {
		return ErrFrameRange
	}

	c := a.cell(row, frame)
	a.data[c] = b.X
	a.data[c+1] = b.Y
	a.data[c+2] = b.W
	a.data[c+3] = b.H
	return nil
}

// Clear marks the given tracklet as absent at the given frame
func (a *Array) Clear(id, frame int) error {

	row, ok := a.rowOf[id]
	if !ok {
		return ErrUnknownTrack
	}
	if frame < 0 || frame >= a.numFrames {
		return ErrFrameRange
	}

	c := a.cell(row, frame)
	for i := 0; i < boxSize; i++ {
		a.data[c+i] = absent
	}
	return nil
}

// Present returns the sorted frames where the given tracklet has a box
func (a *Array) Present(id int) []int {

	row, ok := a.rowOf[id]
	if !ok {
		return nil
	}

	var frames []int
	for f := 0; f < a.numFrames; f++ {
		x := a.data[a.cell(row, f)]
		if x == x {
			frames = append(frames, f)
		}
	}
	return frames
}

// Count returns the number of frames where the given tracklet has a box
func (a *Array) Count(id int) int {

	row, ok := a.rowOf[id]
	if !ok {
		return 0
	}

	n := 0
	for f := 0; f < a.numFrames; f++ {
		x := a.data[a.cell(row, f)]
		if x == x {
			n++
		}
	}
	return n
}

// Range returns the first and last frame where the given tracklet has a
// box.  ok is false for unknown tracklets and tracklets with no boxes.
func (a *Array) Range(id int) (first, last int, ok bool) {

	frames := a.Present(id)
	if len(frames) == 0 {
		return 0, 0, false
	}
	return frames[0], frames[len(frames)-1], true
}

// Runs returns the maximal runs of consecutive frames where the given
// tracklet has a box, as inclusive [start, end] frame pairs
func (a *Array) Runs(id int) [][2]int {

	var runs [][2]int
	start := -1

	for f := 0; f <= a.numFrames; f++ {
		_, present := a.At(id, f)

		switch {
		case present && start < 0:
			start = f
		case !present && start >= 0:
			runs = append(runs, [2]int{start, f - 1})
			start = -1
		}
	}

	return runs
}

// AtFrame returns every tracklet box present in the given frame, in row
// order
func (a *Array) AtFrame(frame int) []TrackBox {

	var boxes []TrackBox
	for _, id := range a.ids {
		if b, ok := a.At(id, frame); ok {
			boxes = append(boxes, TrackBox{ID: id, Box: b})
		}
	}
	return boxes
}

// Clone returns a deep copy of the array
func (a *Array) Clone() *Array {

	c := &Array{
		ids:       append([]int(nil), a.ids...),
		rowOf:     make(map[int]int, len(a.ids)),
		numFrames: a.numFrames,
		data:      append([]float32(nil), a.data...),
	}
	for row, id := range c.ids {
		c.rowOf[id] = row
	}
	return c
}

// Equal reports whether two arrays have the same tracklets in the same row
// order with identical cells.  Absent cells compare equal to each other.
func (a *Array) Equal(other *Array) bool {

	if other == nil || a.numFrames != other.numFrames ||
		len(a.ids) != len(other.ids) {
		return false
	}

	for row, id := range a.ids {
		if other.ids[row] != id {
			return false
		}
	}

	for i, x := range a.data {
		y := other.data[i]
		xa, ya := x != x, y != y
		if xa != ya {
			return false
		}
		if !xa && x != y {
			return false
		}
	}
	return true
}

// addRow appends an empty row for a new track ID and returns its row index.
// The caller must ensure the ID is not already in use.
func (a *Array) addRow(id int) int {

	row := len(a.ids)
	a.ids = append(a.ids, id)
	a.rowOf[id] = row

	cells := make([]float32, a.numFrames*boxSize)
	for i := range cells {
		cells[i] = absent
	}
	a.data = append(a.data, cells...)
	return row
}

// removeRow deletes the row for the given track ID, shifting later rows up
func (a *Array) removeRow(id int) {

	row, ok := a.rowOf[id]
	if !ok {
		return
	}

	start := a.cell(row, 0)
	end := start + a.numFrames*boxSize
	a.data = append(a.data[:start], a.data[end:]...)
	a.ids = append(a.ids[:row], a.ids[row+1:]...)

	delete(a.rowOf, id)
	for r := row; r < len(a.ids); r++ {
		a.rowOf[a.ids[r]] = r
	}
}

// sortedIDs returns the track IDs in ascending numeric order
func (a *Array) sortedIDs() []int {
	ids := a.IDs()
	sort.Ints(ids)
	return ids
}
