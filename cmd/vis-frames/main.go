// vis-frames draws every tracklet's bounding box and ID onto the
// sequence's extracted frame images, writing annotated copies to a
// separate directory.  The source frames are never modified.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
	"github.com/seqview/go-mot/render"
	"github.com/seqview/go-mot/video"
	"gocv.io/x/gocv"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	dataset := flag.String("dataset", "dataset",
		"Folder containing <sequence>/img1 frame images")
	outDir := flag.String("out-dir", "annotated",
		"Folder to save annotated frames under <sequence>/")
	thickness := flag.Int("thickness", 2, "Box line thickness in pixels")
	trailLen := flag.Int("trail", 0,
		"Draw a motion trail of this many recent box centers (0 = off)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: vis-frames [flags] <sequence>")
	}

	seq := flag.Arg(0)

	a, err := mot.Load(filepath.Join(*arrDir, seq+".npy"))

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	imgDir := filepath.Join(*dataset, seq, "img1")
	annDir := filepath.Join(*outDir, seq)

	if err := os.MkdirAll(annDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	font := render.DefaultFont()

	var trail *render.Trail
	if *trailLen > 0 {
		trail = render.NewTrail(*trailLen)
	}

	written := 0

	for f := 0; f < a.NumFrames(); f++ {

		imgPath := video.FrameImage(imgDir, f)

		if _, err := os.Stat(imgPath); err != nil {
			continue
		}

		img := gocv.IMRead(imgPath, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			continue
		}

		boxes := a.AtFrame(f)

		if trail != nil {
			trail.Add(boxes)
			trail.Draw(&img, *thickness)
		}

		render.TrackBoxes(&img, boxes, font, *thickness)

		name := video.FrameImage(annDir, f)

		if ok := gocv.IMWrite(name, img); !ok {
			img.Close()
			log.Fatalf("Error writing annotated frame %s", name)
		}

		img.Close()
		written++
	}

	color.Green("annotated %d frames into %s", written, annDir)
}
