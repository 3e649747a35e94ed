package mot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Array file layout, NumPy .npy containing a 2D float64 matrix of shape
// (numTracks+1, 1+numFrames*4):
//
//	row 0:   [numFrames, 0, 0, ...]            header row
//	row i>0: [trackID, x,y,w,h, x,y,w,h, ...]  one cell per frame
//
// Absent cells hold NaN in all four components.  The header row keeps the
// file self-describing even for arrays with no tracklets.

// Save writes the tracklet array to path in .npy format, creating parent
// directories as needed
func Save(a *Array, path string) error {

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating array directory: %w", err)
	}

	cols := 1 + a.numFrames*boxSize
	m := mat.NewDense(a.NumTracks()+1, cols, nil)

	m.Set(0, 0, float64(a.numFrames))

	for row, id := range a.ids {
		m.Set(row+1, 0, float64(id))
		base := a.cell(row, 0)
		for i := 0; i < a.numFrames*boxSize; i++ {
			m.Set(row+1, 1+i, float64(a.data[base+i]))
		}
	}

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating array file: %w", err)
	}

	defer f.Close()

	w := bufio.NewWriter(f)

	if err := npyio.Write(w, m); err != nil {
		return fmt.Errorf("error writing array file: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing array file: %w", err)
	}

	return f.Close()
}

// Load reads a tracklet array previously written by Save
func Load(path string) (*Array, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening array file: %w", err)
	}

	defer f.Close()

	var m mat.Dense

	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("%s: error reading array file: %w", path, err)
	}

	rows, cols := m.Dims()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: array file has empty shape", path)
	}

	numFrames := int(m.At(0, 0))
	if numFrames < 0 || cols != 1+numFrames*boxSize {
		return nil, fmt.Errorf("%s: array file shape (%d, %d) does not match frame count %d",
			path, rows, cols, numFrames)
	}

	ids := make([]int, rows-1)
	for row := range ids {
		v := m.At(row+1, 0)
		if v != math.Trunc(v) || math.IsNaN(v) {
			return nil, fmt.Errorf("%s: array file has non-integer track id %v",
				path, v)
		}
		ids[row] = int(v)
	}

	a := NewArray(ids, numFrames)
	if a.NumTracks() != rows-1 {
		return nil, fmt.Errorf("%s: array file repeats a track id", path)
	}

	for row := range ids {
		base := a.cell(row, 0)
		for i := 0; i < numFrames*boxSize; i++ {
			a.data[base+i] = float32(m.At(row+1, 1+i))
		}
	}

	return a, nil
}

// WriteText exports the array as MOT-style text, one detection per line in
// frame order:
//
//	frame,id,x,y,w,h,1,1,1
func WriteText(a *Array, w io.Writer) error {

	ids := a.sortedIDs()

	for f := 0; f < a.numFrames; f++ {
		for _, id := range ids {
			b, ok := a.At(id, f)
			if !ok {
				continue
			}

			_, err := fmt.Fprintf(w, "%d,%d,%.2f,%.2f,%.2f,%.2f,1,1,1\n",
				f, id, b.X, b.Y, b.W, b.H)
			if err != nil {
				return fmt.Errorf("error writing tracker text: %w", err)
			}
		}
	}

	return nil
}

// WriteTextFile exports the array as MOT-style text to path, creating
// parent directories as needed
func WriteTextFile(a *Array, path string) error {

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	defer f.Close()

	w := bufio.NewWriter(f)

	if err := WriteText(a, w); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	return f.Close()
}
