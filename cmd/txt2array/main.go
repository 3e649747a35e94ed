// txt2array converts MOT-style tracker output text into a tracklet array
// file
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
)

func main() {

	txtDir := flag.String("txt-dir", "tracklets_txt",
		"Folder containing <sequence>.txt tracker output")
	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder to save <sequence>.npy under")
	numFrames := flag.Int("num-frames", 0,
		"Fix the frame count instead of inferring it from the input (0 = infer)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: txt2array [flags] <sequence>")
	}

	seq := flag.Arg(0)
	txtPath := filepath.Join(*txtDir, seq+".txt")

	var opts []mot.ParseOption
	if *numFrames > 0 {
		opts = append(opts, mot.WithNumFrames(*numFrames))
	}

	a, err := mot.ParseFile(txtPath, opts...)

	if err != nil {
		log.Fatalf("Error parsing tracker output: %v", err)
	}

	outPath := filepath.Join(*arrDir, seq+".npy")

	if err := mot.Save(a, outPath); err != nil {
		log.Fatalf("Error saving array: %v", err)
	}

	color.Green("saved array to %s (%d tracklets, %d frames)",
		outPath, a.NumTracks(), a.NumFrames())
}
