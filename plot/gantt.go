// Package plot renders schematic views of a tracklet array's presence
// mask, for quick gap and overlap inspection without touching the frame
// images
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqview/go-mot"
	"github.com/seqview/go-mot/render"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxTickTracks is the largest track count that still gets one Y axis tick
// per tracklet; beyond this the default ticker takes over
const maxTickTracks = 40

// Gantt renders tracklet presence as a Gantt-like chart, one horizontal
// segment per run of consecutive frames a tracklet is present in, with the
// track ID on the Y axis.  The chart is saved as a PNG at path.
func Gantt(a *mot.Array, title, path string) error {

	if a.NumTracks() == 0 || a.NumFrames() == 0 {
		return fmt.Errorf("cannot plot empty tracklet array")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating plot directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Tracklet ID"

	minID, maxID := 0, 0

	for i, id := range a.IDs() {
		if i == 0 || id < minID {
			minID = id
		}
		if i == 0 || id > maxID {
			maxID = id
		}

		clr := render.TrackColor(id)

		for _, run := range a.Runs(id) {

			if run[0] == run[1] {
				// single frame runs have no length, draw a point
				s, err := plotter.NewScatter(plotter.XYs{
					{X: float64(run[0]), Y: float64(id)},
				})
				if err != nil {
					return fmt.Errorf("error building presence point: %w", err)
				}
				s.GlyphStyle.Color = clr
				s.GlyphStyle.Radius = vg.Points(1.5)
				p.Add(s)
				continue
			}

			l, err := plotter.NewLine(plotter.XYs{
				{X: float64(run[0]), Y: float64(id)},
				{X: float64(run[1]), Y: float64(id)},
			})
			if err != nil {
				return fmt.Errorf("error building presence segment: %w", err)
			}
			l.LineStyle.Width = vg.Points(2)
			l.LineStyle.Color = clr
			p.Add(l)
		}
	}

	p.X.Min = 0
	p.X.Max = float64(a.NumFrames() - 1)
	p.Y.Min = float64(minID) - 0.5
	p.Y.Max = float64(maxID) + 0.5

	if a.NumTracks() <= maxTickTracks {
		ticks := make([]plot.Tick, 0, a.NumTracks())
		for _, id := range a.IDs() {
			ticks = append(ticks, plot.Tick{
				Value: float64(id),
				Label: fmt.Sprintf("%d", id),
			})
		}
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving presence chart: %w", err)
	}

	return nil
}
