// merge-tracklets merges one tracklet into another.  The two tracklets
// must not share any frame.  The source tracklet's cells move into the
// destination's row, its row is removed, and any crop images produced by
// vis-tracklets are relocated to match.  The edited array is written to a
// new file unless -overwrite is given.
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
		"Output array path (default <sequence>_merge.npy next to the input)")
	overwrite := flag.Bool("overwrite", false,
		"Write the edited array over the input file")
	flag.Parse()

	if flag.NArg() != 3 {
		log.Fatal("usage: merge-tracklets [flags] <sequence> <dst-id> <src-id>")
	}

	seq := flag.Arg(0)

	dst, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("Bad tracklet id %q: %v", flag.Arg(1), err)
	}

	src, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("Bad tracklet id %q: %v", flag.Arg(2), err)
	}

	inPath := filepath.Join(*arrDir, seq+".npy")

	a, err := mot.Load(inPath)

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	if err := mot.Merge(a, dst, src); err != nil {
		log.Fatalf("Error merging tracklets: %v", err)
	}

	// relocate crop images if a visualization pass produced any
	err = render.MergeCropDirs(filepath.Join(*visDir, seq), dst, src)

	if err != nil {
		log.Fatalf("Error relocating crop images: %v", err)
	}

	outFile := editedPath(inPath, "_merge", *out, *overwrite)

	if err := mot.Save(a, outFile); err != nil {
		log.Fatalf("Error saving array: %v", err)
	}

	color.Green("merged tracklet %d into %d (%d tracklets remain)",
		src, dst, a.NumTracks())
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
