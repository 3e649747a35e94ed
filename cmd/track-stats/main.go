// track-stats reports the tracklet count of a sequence and per-tracklet
// box counts, active ranges and gap counts
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	mot "github.com/seqview/go-mot"
)

func main() {

	arrDir := flag.String("arr-dir", "tracklets_array",
		"Folder containing <sequence>.npy")
	only := flag.Int("id", -1,
		"Report a single tracklet ID instead of all (-1 = all)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: track-stats [flags] <sequence>")
	}

	seq := flag.Arg(0)

	a, err := mot.Load(filepath.Join(*arrDir, seq+".npy"))

	if err != nil {
		log.Fatalf("Error loading array: %v", err)
	}

	ids := a.IDs()
	sort.Ints(ids)

	if *only >= 0 {
		if !a.HasTrack(*only) {
			log.Fatalf("Sequence %s has no tracklet %d", seq, *only)
		}
		ids = []int{*only}
	} else {
		color.Green("%s: %d tracklets over %d frames", seq, a.NumTracks(), a.NumFrames())
	}

	for _, id := range ids {

		first, last, ok := a.Range(id)
		if !ok {
			fmt.Printf("tracklet %4d: no boxes\n", id)
			continue
		}

		runs := a.Runs(id)

		fmt.Printf("tracklet %4d: %5d boxes, frames %d..%d, %d gaps\n",
			id, a.Count(id), first, last, len(runs)-1)
	}
}
