// split-tracklet splits one tracklet into two at a given frame.  Cells at
// frames >= the split frame move to a newly allocated tracklet, and any
// crop images produced by vis-tracklets are relocated to match.  The
// edited array is written to a new file unless -overwrite is given.
package main

import (
	"flag"
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
	visDir := flag.String("vis-dir", "tracklets_vis",
		"Root folder containing per-sequence tracklet crops")
	out := flag.String("o", "",
		"Output array path (default <sequence>_split.npy next to the input)")
	overwrite := flag.Bool("overwrite", false,
		"Write the edited array over the input file")
	flag.Parse()

	if flag.NArg() != 3 {
		log.Fatal("usage: split-tracklet [flags] <sequence> <tracklet-id> <frame>")
	}

	seq := flag.Arg(0)

	id, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("Bad tracklet id %q: %v", flag.Arg(1), err)
	}

	frame, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("Bad frame index %q: %v", flag.Arg(2), err)
	}

	inPath := filepath.Join(*arrDir, seq+".npy")

	a, err := mot.Load(inPath)

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	newID, err := mot.Split(a, id, frame)

	if err != nil {
		log.Fatalf("Error splitting tracklet: %v", err)
	}

	// relocate crop images if a visualization pass produced any
	err = render.SplitCropDir(filepath.Join(*visDir, seq), id, newID, frame)

	if err != nil {
		log.Fatalf("Error relocating crop images: %v", err)
	}

	outFile := editedPath(inPath, "_split", *out, *overwrite)

	if err := mot.Save(a, outFile); err != nil {
		log.Fatalf("Error saving array: %v", err)
	}

	color.Green("split tracklet %d at frame %d, frames %d.. now belong to tracklet %d",
		id, frame, frame, newID)
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
