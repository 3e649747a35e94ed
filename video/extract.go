// Package video extracts per-frame images from video files
package video

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"gocv.io/x/gocv"
)

// FrameImage returns the path of the image extracted for the given 0-based
// frame index.  Images are written 1-based with 6-digit names, 000001.jpg
// is frame 0.
func FrameImage(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("%06d.jpg", frame+1))
}

// Extract decodes the video at videoPath and writes one JPEG per frame to
// outDir, creating it as needed.  Returns the number of frames written.
func Extract(videoPath, outDir string) (int, error) {

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("error creating frame directory: %w", err)
	}

	capture, err := gocv.VideoCaptureFile(videoPath)

	if err != nil {
		return 0, fmt.Errorf("error opening video %s: %w", videoPath, err)
	}

	defer capture.Close()

	// container frame count is a hint only, some formats misreport it
	total := int(capture.Get(gocv.VideoCaptureFrameCount))
	if total <= 0 {
		total = -1
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("extracting frames"),
	)

	img := gocv.NewMat()
	defer img.Close()

	count := 0

	for capture.Read(&img) {
		if img.Empty() {
			continue
		}

		name := FrameImage(outDir, count)

		if ok := gocv.IMWrite(name, img); !ok {
			return count, fmt.Errorf("error writing frame image %s", name)
		}

		count++
		bar.Add(1)
	}

	bar.Finish()
	fmt.Fprintln(os.Stderr)

	return count, nil
}
