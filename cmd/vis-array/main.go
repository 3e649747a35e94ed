// vis-array renders a schematic view of a tracklet array's presence mask:
// a Gantt-like chart (one segment per presence run), a pixel strip (one
// row per tracklet), or an interactive HTML timeline.  The stage label
// distinguishes snapshots taken between editing passes.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
	"github.com/seqview/go-mot/plot"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	outDir := flag.String("out-dir", "demo",
		"Folder to save views under <sequence>/")
	stage := flag.String("stage", "current",
		"Stage label used in the output file name (e.g. raw, split, merged)")
	format := flag.String("format", "gantt",
		"View format: gantt, strip or timeline")
	cellW := flag.Int("cell-width", 2, "Strip cell width in pixels")
	rowH := flag.Int("row-height", 8, "Strip row height in pixels")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: vis-array [flags] <sequence>")
	}

	seq := flag.Arg(0)

	a, err := mot.Load(filepath.Join(*arrDir, seq+".npy"))

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	title := fmt.Sprintf("%s tracklet presence (%s)", seq, *stage)
	base := filepath.Join(*outDir, seq)

	var outPath string

	switch *format {
	case "gantt":
		outPath = filepath.Join(base, *stage+"_gantt.png")
		err = plot.Gantt(a, title, outPath)

	case "strip":
		outPath = filepath.Join(base, *stage+"_strip.png")
		err = plot.Strip(a, outPath, *cellW, *rowH)

	case "timeline":
		outPath = filepath.Join(base, *stage+"_timeline.html")
		err = plot.Timeline(a, title, outPath)

	default:
		log.Fatalf("Unknown format %q (want gantt, strip or timeline)", *format)
	}

	if err != nil {
		log.Fatalf("Error rendering %s view: %v", *format, err)
	}

	color.Green("saved %s view to %s", *format, outPath)
}
