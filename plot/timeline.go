package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/seqview/go-mot"
)

// maxTimelinePoints caps the number of presence points embedded in the
// HTML page; larger arrays are downsampled by stride
const maxTimelinePoints = 8000

// Timeline renders tracklet presence as an interactive HTML scatter chart
// with the frame on X and the track ID on Y, written to path.  Useful for
// zooming into dense sequences where the static views get crowded.
func Timeline(a *mot.Array, title, path string) error {

	if a.NumTracks() == 0 || a.NumFrames() == 0 {
		return fmt.Errorf("cannot plot empty tracklet array")
	}

	var points []opts.ScatterData

	minID, maxID := 0, 0

	for i, id := range a.IDs() {
		if i == 0 || id < minID {
			minID = id
		}
		if i == 0 || id > maxID {
			maxID = id
		}
		for _, f := range a.Present(id) {
			points = append(points, opts.ScatterData{
				Value: []interface{}{f, id, id},
			})
		}
	}

	// downsample by stride to keep the page responsive
	if len(points) > maxTimelinePoints {
		stride := (len(points) + maxTimelinePoints - 1) / maxTimelinePoints
		kept := points[:0]
		for i := 0; i < len(points); i += stride {
			kept = append(kept, points[i])
		}
		points = kept
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d tracklets over %d frames", a.NumTracks(), a.NumFrames()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Frame", NameLocation: "middle", NameGap: 25,
			Min: 0, Max: a.NumFrames() - 1,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Tracklet ID", NameLocation: "middle", NameGap: 30,
			Min: minID - 1, Max: maxID + 1,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:      opts.Bool(false),
			Min:       float32(minID),
			Max:       float32(maxID),
			Dimension: "2",
			InRange: &opts.VisualMapInRange{
				Color: []string{"#FF3838", "#FFB21D", "#48F90A", "#00C2FF",
					"#6473FF", "#8438FF", "#FF37C7"},
			},
		}),
	)

	scatter.AddSeries("presence", points,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating plot directory: %w", err)
	}

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating timeline page: %w", err)
	}

	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("error rendering timeline page: %w", err)
	}

	return f.Close()
}
