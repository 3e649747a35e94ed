// array2txt exports a tracklet array back into MOT-style tracker text
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	outDir := flag.String("out-dir", "final_tracklets",
		"Folder to save <sequence>.txt under")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: array2txt [flags] <sequence>")
	}

	seq := flag.Arg(0)

	a, err := mot.Load(filepath.Join(*arrDir, seq+".npy"))

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	outPath := filepath.Join(*outDir, seq+".txt")

	if err := mot.WriteTextFile(a, outPath); err != nil {
		log.Fatalf("Error writing tracker text: %v", err)
	}

	boxes := 0
	for _, id := range a.IDs() {
		boxes += a.Count(id)
	}

	color.Green("saved %d detections from %d tracklets to %s",
		boxes, a.NumTracks(), outPath)
}
