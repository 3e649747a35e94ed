package mot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownTrack is returned when an operation names a tracklet ID
	// that does not exist in the array
	ErrUnknownTrack = errors.New("unknown tracklet id")

	// ErrFrameRange is returned when a frame index falls outside the
	// array's columns
	ErrFrameRange = errors.New("frame index out of range")
)

// ParseError reports a malformed line in tracker output.  Line numbers are
// 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidSplitPointError reports a split frame that does not fall strictly
// inside the tracklet's active range
type InvalidSplitPointError struct {
	ID    int
	Frame int
	// First and Last bound the tracklet's active range.  Both are -1 when
	// the tracklet has no boxes at all.
	First int
	Last  int
}

func (e *InvalidSplitPointError) Error() string {

	if e.First < 0 {
		return fmt.Sprintf("cannot split tracklet %d at frame %d: tracklet has no boxes",
			e.ID, e.Frame)
	}

	return fmt.Sprintf("cannot split tracklet %d at frame %d: split frame must lie strictly inside active range %d..%d",
		e.ID, e.Frame, e.First, e.Last)
}

// OverlapError reports an attempt to merge two tracklets that are both
// present in at least one frame
type OverlapError struct {
	A, B   int
	Frames []int
}

func (e *OverlapError) Error() string {

	show := e.Frames
	more := ""
	if len(show) > 10 {
		show = show[:10]
		more = "..."
	}

	frames := make([]string, len(show))
	for i, f := range show {
		frames[i] = strconv.Itoa(f)
	}

	return fmt.Sprintf("cannot merge tracklets %d and %d: both present in frames %s%s",
		e.A, e.B, strings.Join(frames, ", "), more)
}
