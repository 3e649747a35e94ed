package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/seqview/go-mot"
	"github.com/seqview/go-mot/render"
	xdraw "golang.org/x/image/draw"
)

// absentColor fills strip cells where a tracklet has no box
var absentColor = color.NRGBA{R: 40, G: 40, B: 40, A: 255}

// Strip renders the presence mask as a pixel strip, one row per tracklet
// in row order and one column per frame, scaled up by cellW x rowH so
// individual cells stay visible.  Present cells take the tracklet's
// palette color.  The strip is saved as a PNG at path.
func Strip(a *mot.Array, path string, cellW, rowH int) error {

	if a.NumTracks() == 0 || a.NumFrames() == 0 {
		return fmt.Errorf("cannot plot empty tracklet array")
	}
	if cellW < 1 || rowH < 1 {
		return fmt.Errorf("strip cell size must be positive, got %dx%d", cellW, rowH)
	}

	base := image.NewNRGBA(image.Rect(0, 0, a.NumFrames(), a.NumTracks()))

	for row, id := range a.IDs() {

		clr := render.TrackColor(id)

		for f := 0; f < a.NumFrames(); f++ {
			if _, ok := a.At(id, f); ok {
				base.SetNRGBA(f, row, color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: 255})
			} else {
				base.SetNRGBA(f, row, absentColor)
			}
		}
	}

	// nearest neighbour scaling keeps cell boundaries crisp
	dst := image.NewNRGBA(image.Rect(0, 0, a.NumFrames()*cellW, a.NumTracks()*rowH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating plot directory: %w", err)
	}

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating strip image: %w", err)
	}

	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("error encoding strip image: %w", err)
	}

	return f.Close()
}
