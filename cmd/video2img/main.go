// video2img extracts every frame of a sequence's video into per-frame
// JPEG images under <dataset>/<sequence>/img1
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/seqview/go-mot/video"
)

func main() {

	root := flag.String("root", "videos",
		"Folder containing <sequence>.mp4")
	dataset := flag.String("dataset", "dataset",
		"Folder to save <sequence>/img1 frame images under")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: video2img [flags] <sequence>")
	}

	seq := flag.Arg(0)
	videoFile := filepath.Join(*root, seq+".mp4")
	outDir := filepath.Join(*dataset, seq, "img1")

	n, err := video.Extract(videoFile, outDir)

	if err != nil {
		log.Fatalf("Error extracting frames: %v", err)
	}

	color.Green("saved %d frames to %s", n, outDir)
}
