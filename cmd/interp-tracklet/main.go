// interp-tracklet fills gaps in one tracklet by linear interpolation
// between the boxes bounding each gap.  Crops of the interpolated boxes
// are saved alongside the tracklet's other crops so the fill can be
// eyeballed.  The edited array is written to a new file unless -overwrite
// is given.
package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
	"github.com/seqview/go-mot/render"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	dataset := flag.String("dataset", "dataset",
		"Folder containing <sequence>/img1 frame images")
	visDir := flag.String("vis-dir", "tracklets_vis",
		"Root folder containing per-sequence tracklet crops")
	maxGap := flag.Int("max-gap", 0,
		"Longest gap to interpolate across, in frames (0 = no limit)")
	saveCrops := flag.Bool("save-crops", true,
		"Save crops of the interpolated boxes for inspection")
	out := flag.String("o", "",
		"Output array path (default <sequence>_interp.npy next to the input)")
	overwrite := flag.Bool("overwrite", false,
		"Write the edited array over the input file")
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatal("usage: interp-tracklet [flags] <sequence> <tracklet-id>")
	}

	seq := flag.Arg(0)

	id, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("Bad tracklet id %q: %v", flag.Arg(1), err)
	}

	inPath := filepath.Join(*arrDir, seq+".npy")

	a, err := mot.Load(inPath)

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	filled, err := mot.Interpolate(a, id, *maxGap)

	if err != nil {
		log.Fatalf("Error interpolating tracklet: %v", err)
	}

	if *saveCrops && len(filled) > 0 {
		imgDir := filepath.Join(*dataset, seq, "img1")

		err := render.CropFrames(a, id, filled, imgDir,
			filepath.Join(*visDir, seq), image.Point{})

		if err != nil {
			log.Fatalf("Error saving interpolated crops: %v", err)
		}
	}

	outFile := editedPath(inPath, "_interp", *out, *overwrite)

	if err := mot.Save(a, outFile); err != nil {
		log.Fatalf("Error saving array: %v", err)
	}

	color.Green("interpolated %d boxes for tracklet %d", len(filled), id)
	color.Green("saved array to %s", outFile)
}

// editedPath picks the destination of an edited array: an explicit -o path
// wins, -overwrite reuses the input path, otherwise the op suffix is
// appended to the input name
func editedPath(in, suffix, explicit string, overwrite bool) string {

	if explicit != "" {
		return explicit
	}
	if overwrite {
		return in
	}

	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + suffix + ext
}
