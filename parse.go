package mot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// detection is one parsed line of tracker output
type detection struct {
	frame int
	id    int
	box   Box
}

type parseConfig struct {
	numFrames int
}

// ParseOption configures Parse
type ParseOption func(*parseConfig)

// WithNumFrames fixes the number of frame columns instead of inferring it
// from the largest frame index seen in the input
func WithNumFrames(n int) ParseOption {
	return func(c *parseConfig) {
		c.numFrames = n
	}
}

// Parse reads MOT-style tracker output and builds the tracklet array.
// Each line holds one detection as
//
//	frame,id,x,y,w,h[,score,...]
//
// delimited by commas or whitespace.  Frame indices are 0-based columns in
// the resulting array.  Tracklet rows are ordered by first appearance and
// keep the tracker's integer IDs.  Any malformed line, and any duplicate
// (id, frame) detection, fails with a *ParseError naming the offending
// line.  Parsing the same input always yields an equal array.
func Parse(r io.Reader, opts ...ParseOption) (*Array, error) {

	cfg := parseConfig{numFrames: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	type cellKey struct{ id, frame int }

	var (
		dets     []detection
		ids      []int
		seen     = make(map[int]bool)
		occupied = make(map[cellKey]int)
		maxFrame = -1
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		det, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}

		if cfg.numFrames >= 0 && det.frame >= cfg.numFrames {
			return nil, &ParseError{Line: lineNum, Text: line,
				Err: fmt.Errorf("frame %d exceeds fixed frame count %d",
					det.frame, cfg.numFrames)}
		}

		key := cellKey{id: det.id, frame: det.frame}
		if prev, dup := occupied[key]; dup {
			return nil, &ParseError{Line: lineNum, Text: line,
				Err: fmt.Errorf("duplicate detection for tracklet %d at frame %d (first seen on line %d)",
					det.id, det.frame, prev)}
		}
		occupied[key] = lineNum

		if det.frame > maxFrame {
			maxFrame = det.frame
		}
		if !seen[det.id] {
			seen[det.id] = true
			ids = append(ids, det.id)
		}

		dets = append(dets, det)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading tracker output: %w", err)
	}

	numFrames := maxFrame + 1
	if cfg.numFrames >= 0 {
		numFrames = cfg.numFrames
	}

	a := NewArray(ids, numFrames)

	for _, det := range dets {
		if err := a.Set(det.id, det.frame, det.box); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// ParseFile opens a tracker output file and parses it with Parse
func ParseFile(path string, opts ...ParseOption) (*Array, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening tracker output: %w", err)
	}

	defer f.Close()

	a, err := Parse(f, opts...)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// parseLine splits one detection line into its fields.  Trailing fields
// beyond the box (score, ignore markers) are accepted and discarded.
func parseLine(line string) (detection, error) {

	var fields []string

	if strings.ContainsRune(line, ',') {
		for _, f := range strings.Split(line, ",") {
			fields = append(fields, strings.TrimSpace(f))
		}
	} else {
		fields = strings.Fields(line)
	}

	if len(fields) < 6 {
		return detection{}, fmt.Errorf("expected at least 6 fields, got %d",
			len(fields))
	}

	frame, err := strconv.Atoi(fields[0])
	if err != nil {
		return detection{}, fmt.Errorf("bad frame index: %w", err)
	}
	if frame < 0 {
		return detection{}, errors.New("negative frame index")
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return detection{}, fmt.Errorf("bad track id: %w", err)
	}

	var box [4]float32
	names := [4]string{"x", "y", "w", "h"}

	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[2+i], 32)
		if err != nil {
			return detection{}, fmt.Errorf("bad %s value: %w", names[i], err)
		}
		box[i] = float32(v)
	}

	return detection{
		frame: frame,
		id:    id,
		box:   NewBox(box[0], box[1], box[2], box[3]),
	}, nil
}
