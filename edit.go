package mot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Split moves every cell of tracklet id at frames >= frame into a newly
// allocated tracklet and returns the new tracklet's ID (largest existing ID
// plus one).  The split frame must lie strictly inside the tracklet's
// active range, so both halves keep at least one box; otherwise a
// *InvalidSplitPointError is returned.  The two resulting tracklets'
// active frames partition the original's.
func Split(a *Array, id, frame int) (int, error) {

	if !a.HasTrack(id) {
		return 0, fmt.Errorf("split tracklet %d: %w", id, ErrUnknownTrack)
	}

	first, last, ok := a.Range(id)
	if !ok {
		return 0, &InvalidSplitPointError{ID: id, Frame: frame, First: -1, Last: -1}
	}

	if frame <= first || frame > last {
		return 0, &InvalidSplitPointError{ID: id, Frame: frame, First: first, Last: last}
	}

	newID := a.MaxID() + 1
	a.addRow(newID)

	for f := frame; f <= last; f++ {
		b, ok := a.At(id, f)
		if !ok {
			continue
		}
		a.Set(newID, f, b)
		a.Clear(id, f)
	}

	return newID, nil
}

// Merge copies every cell of tracklet src into tracklet dst and removes
// src's row.  The two tracklets must not both be present in any frame;
// otherwise a *OverlapError listing the shared frames is returned and the
// array is unchanged.  After a merge dst's active frames are the union of
// the two inputs'.
func Merge(a *Array, dst, src int) error {

	if !a.HasTrack(dst) {
		return fmt.Errorf("merge into tracklet %d: %w", dst, ErrUnknownTrack)
	}
	if !a.HasTrack(src) {
		return fmt.Errorf("merge tracklet %d: %w", src, ErrUnknownTrack)
	}
	if dst == src {
		return fmt.Errorf("cannot merge tracklet %d with itself", dst)
	}

	var overlap []int
	for f := 0; f < a.numFrames; f++ {
		if _, ok := a.At(dst, f); !ok {
			continue
		}
		if _, ok := a.At(src, f); ok {
			overlap = append(overlap, f)
		}
	}

	if len(overlap) > 0 {
		return &OverlapError{A: dst, B: src, Frames: overlap}
	}

	for _, f := range a.Present(src) {
		b, _ := a.At(src, f)
		a.Set(dst, f, b)
	}

	a.removeRow(src)
	return nil
}

// Interpolate fills gaps in tracklet id by component-wise linear
// interpolation between the boxes bounding each gap.  A gap is a maximal
// run of absent frames strictly between two present frames; frames before
// the first or after the last box are never filled.  Gaps longer than
// maxGap frames are skipped; maxGap <= 0 fills every gap.  Returns the
// frames that were filled, in ascending order.
func Interpolate(a *Array, id, maxGap int) ([]int, error) {

	if !a.HasTrack(id) {
		return nil, fmt.Errorf("interpolate tracklet %d: %w", id, ErrUnknownTrack)
	}

	present := a.Present(id)
	if len(present) < 2 {
		return nil, nil
	}

	var filled []int

	for i := 0; i < len(present)-1; i++ {
		t0 := present[i]
		t1 := present[i+1]
		gap := t1 - t0

		if gap <= 1 || (maxGap > 0 && gap > maxGap) {
			continue
		}

		b0, _ := a.At(id, t0)
		b1, _ := a.At(id, t1)

		// interpolation weights over the whole span, endpoints included
		w := make([]float64, gap+1)
		floats.Span(w, 0, 1)

		for k := 1; k < gap; k++ {
			a.Set(id, t0+k, b0.Lerp(b1, float32(w[k])))
			filled = append(filled, t0+k)
		}
	}

	return filled, nil
}
