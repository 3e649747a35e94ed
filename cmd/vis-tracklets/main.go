// vis-tracklets cuts every tracklet's bounding boxes out of the extracted
// frame images and saves them as fixed-size crops under one directory per
// tracklet, for visually checking identity consistency.
package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
	"github.com/seqview/go-mot/render"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	dataset := flag.String("dataset", "dataset",
		"Folder containing <sequence>/img1 frame images")
	outDir := flag.String("out-dir", "tracklets_vis",
		"Folder to save per-tracklet crops under <sequence>/")
	cropW := flag.Int("crop-width", 240, "Crop image width in pixels")
	cropH := flag.Int("crop-height", 480, "Crop image height in pixels")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: vis-tracklets [flags] <sequence>")
	}

	seq := flag.Arg(0)

	a, err := mot.Load(filepath.Join(*arrDir, seq+".npy"))

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	imgDir := filepath.Join(*dataset, seq, "img1")
	root := filepath.Join(*outDir, seq)

	err = render.CropTracklets(a, imgDir, root, image.Pt(*cropW, *cropH))

	if err != nil {
		log.Fatalf("Error cropping tracklets: %v", err)
	}

	color.Green("saved %dx%d crops for %d tracklets under %s",
		*cropW, *cropH, a.NumTracks(), root)
}
