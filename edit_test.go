package mot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gapTrack builds a single-tracklet array with boxes at the given frames
func gapTrack(t *testing.T, id, numFrames int, frames ...int) *Array {
	t.Helper()

	a := NewArray([]int{id}, numFrames)
	for _, f := range frames {
		require.NoError(t, a.Set(id, f, NewBox(float32(f), 0, 10, 10)))
	}
	return a
}

func TestSplitPartition(t *testing.T) {

	// track 5 active frames 2..8 with a gap at frame 5
	a := gapTrack(t, 5, 10, 2, 3, 4, 6, 7, 8)
	original := a.Present(5)

	newID, err := Split(a, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, newID, "new ID is max existing ID plus one")

	left := a.Present(5)
	right := a.Present(newID)

	assert.Equal(t, []int{2, 3, 4}, left)
	assert.Equal(t, []int{6, 7, 8}, right)

	// partition: no frame duplicated or lost
	assert.ElementsMatch(t, original, append(append([]int{}, left...), right...))

	// boxes moved intact
	b, ok := a.At(newID, 7)
	require.True(t, ok)
	assert.Equal(t, NewBox(7, 0, 10, 10), b)
}

func TestSplitPointValidation(t *testing.T) {

	tests := []struct {
		name  string
		frame int
		valid bool
	}{
		{"before active range", 1, false},
		{"at first frame", 2, false},
		{"just after first", 3, true},
		{"at last frame", 8, true},
		{"after active range", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			a := gapTrack(t, 5, 10, 2, 3, 4, 6, 7, 8)
			_, err := Split(a, 5, tt.frame)

			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var serr *InvalidSplitPointError
			require.True(t, errors.As(err, &serr), "want *InvalidSplitPointError, got %v", err)
			assert.Equal(t, tt.frame, serr.Frame)
			assert.Equal(t, 2, serr.First)
			assert.Equal(t, 8, serr.Last)
		})
	}
}

func TestSplitUnknownTrack(t *testing.T) {

	a := gapTrack(t, 5, 10, 2, 3)
	_, err := Split(a, 99, 3)
	assert.ErrorIs(t, err, ErrUnknownTrack)
}

func TestMergeDisjoint(t *testing.T) {

	a := NewArray([]int{1, 2, 3}, 10)
	require.NoError(t, a.Set(1, 0, NewBox(0, 0, 5, 5)))
	require.NoError(t, a.Set(1, 1, NewBox(1, 0, 5, 5)))
	require.NoError(t, a.Set(2, 4, NewBox(4, 0, 5, 5)))
	require.NoError(t, a.Set(2, 5, NewBox(5, 0, 5, 5)))
	require.NoError(t, a.Set(3, 1, NewBox(9, 9, 5, 5)))

	require.NoError(t, Merge(a, 1, 2))

	// merged active frames are the union of the inputs'
	assert.Equal(t, []int{0, 1, 4, 5}, a.Present(1))

	// source row is gone
	assert.False(t, a.HasTrack(2))
	assert.Equal(t, 2, a.NumTracks())

	// source boxes survive under the destination ID
	b, ok := a.At(1, 5)
	require.True(t, ok)
	assert.Equal(t, NewBox(5, 0, 5, 5), b)

	// unrelated tracklet untouched
	assert.Equal(t, []int{1}, a.Present(3))
}

func TestMergeOverlapFails(t *testing.T) {

	a := NewArray([]int{1, 2}, 10)
	require.NoError(t, a.Set(1, 3, NewBox(0, 0, 5, 5)))
	require.NoError(t, a.Set(1, 4, NewBox(0, 0, 5, 5)))
	require.NoError(t, a.Set(2, 4, NewBox(9, 9, 5, 5)))
	require.NoError(t, a.Set(2, 5, NewBox(9, 9, 5, 5)))

	before := a.Clone()

	err := Merge(a, 1, 2)

	var oerr *OverlapError
	require.True(t, errors.As(err, &oerr), "want *OverlapError, got %v", err)
	assert.Equal(t, []int{4}, oerr.Frames)

	// a failed merge leaves the array untouched
	assert.True(t, before.Equal(a))
}

func TestMergeFailsIffOverlap(t *testing.T) {

	// sweep src across frames: merge must fail exactly when src's frame
	// collides with dst's presence at frames 3 and 4
	for f := 0; f < 10; f++ {

		a := NewArray([]int{1, 2}, 10)
		require.NoError(t, a.Set(1, 3, NewBox(0, 0, 5, 5)))
		require.NoError(t, a.Set(1, 4, NewBox(0, 0, 5, 5)))
		require.NoError(t, a.Set(2, f, NewBox(9, 9, 5, 5)))

		err := Merge(a, 1, 2)

		if f == 3 || f == 4 {
			assert.Error(t, err, "frame %d overlaps", f)
		} else {
			assert.NoError(t, err, "frame %d is disjoint", f)
		}
	}
}

func TestMergeSelfAndUnknown(t *testing.T) {

	a := gapTrack(t, 1, 5, 0)

	assert.Error(t, Merge(a, 1, 1))
	assert.ErrorIs(t, Merge(a, 1, 42), ErrUnknownTrack)
	assert.ErrorIs(t, Merge(a, 42, 1), ErrUnknownTrack)
}

func TestInterpolateLinear(t *testing.T) {

	a := NewArray([]int{1}, 15)
	require.NoError(t, a.Set(1, 0, NewBox(0, 0, 10, 10)))
	require.NoError(t, a.Set(1, 10, NewBox(0, 0, 20, 20)))

	filled, err := Interpolate(a, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, filled)

	// midpoint box scales linearly
	b, ok := a.At(1, 5)
	require.True(t, ok)
	assert.InDelta(t, 0, b.X, 1e-4)
	assert.InDelta(t, 0, b.Y, 1e-4)
	assert.InDelta(t, 15, b.W, 1e-4)
	assert.InDelta(t, 15, b.H, 1e-4)

	b, ok = a.At(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 12, b.W, 1e-4)

	// trailing absences stay absent
	for f := 11; f < 15; f++ {
		_, ok := a.At(1, f)
		assert.False(t, ok, "frame %d must stay absent", f)
	}
}

func TestInterpolateLeadingAbsencesUntouched(t *testing.T) {

	a := NewArray([]int{1}, 12)
	require.NoError(t, a.Set(1, 4, NewBox(0, 0, 10, 10)))
	require.NoError(t, a.Set(1, 8, NewBox(4, 0, 10, 10)))

	filled, err := Interpolate(a, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, filled)

	for f := 0; f < 4; f++ {
		_, ok := a.At(1, f)
		assert.False(t, ok, "frame %d must stay absent", f)
	}
}

func TestInterpolateMaxGap(t *testing.T) {

	// two gaps: frames 1-2 (gap 3) and frames 6-9 (gap 5)
	a := gapTrack(t, 1, 12, 0, 3, 5, 10)

	filled, err := Interpolate(a, 1, 3)
	require.NoError(t, err)

	// only the short gap is filled
	assert.Equal(t, []int{1, 2, 4}, filled)

	_, ok := a.At(1, 7)
	assert.False(t, ok)
}

func TestInterpolateNothingToDo(t *testing.T) {

	a := gapTrack(t, 1, 5, 2)

	filled, err := Interpolate(a, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, filled)

	_, err = Interpolate(a, 9, 0)
	assert.ErrorIs(t, err, ErrUnknownTrack)
}
