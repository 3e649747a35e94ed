package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/seqview/go-mot"
	"github.com/seqview/go-mot/video"
	"gocv.io/x/gocv"
)

// jpegQuality is the quality used when writing crop images
const jpegQuality = 95

// TrackletDir returns the directory holding one tracklet's crop images
func TrackletDir(root string, id int) string {
	return filepath.Join(root, fmt.Sprintf("tracklet_%04d", id))
}

// CropTracklets cuts the bounding box of every tracklet out of each frame
// image and saves the crops under per-tracklet directories, resized to
// size.  Frames with no image on disk are skipped.
func CropTracklets(a *mot.Array, imgDir, root string, size image.Point) error {

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("error creating crop directory: %w", err)
	}

	for f := 0; f < a.NumFrames(); f++ {

		boxes := a.AtFrame(f)
		if len(boxes) == 0 {
			continue
		}

		imgPath := video.FrameImage(imgDir, f)

		if _, err := os.Stat(imgPath); err != nil {
			continue
		}

		img := gocv.IMRead(imgPath, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			continue
		}

		for _, tb := range boxes {
			err := writeCrop(img, tb.Box, TrackletDir(root, tb.ID), f, size)
			if err != nil {
				img.Close()
				return err
			}
		}

		img.Close()
	}

	return nil
}

// CropFrames saves crops of tracklet id for the given frames only, used
// after interpolation to capture the newly filled boxes.  A zero size
// keeps the crop's natural dimensions.
func CropFrames(a *mot.Array, id int, frames []int, imgDir, root string, size image.Point) error {

	dir := TrackletDir(root, id)

	for _, f := range frames {

		b, ok := a.At(id, f)
		if !ok {
			continue
		}

		imgPath := video.FrameImage(imgDir, f)

		if _, err := os.Stat(imgPath); err != nil {
			continue
		}

		img := gocv.IMRead(imgPath, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			continue
		}

		err := writeCrop(img, b, dir, f, size)
		img.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

// writeCrop clamps the box to the frame image, cuts the region out and
// writes it as dir/FFFFFF.jpg.  Degenerate regions after clamping are
// skipped.
func writeCrop(img gocv.Mat, b mot.Box, dir string, frame int, size image.Point) error {

	bounds := image.Rect(0, 0, img.Cols(), img.Rows())
	region := b.Rect().Intersect(bounds)

	if region.Dx() <= 0 || region.Dy() <= 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating tracklet directory: %w", err)
	}

	crop := img.Region(region)
	defer crop.Close()

	out := crop

	if size.X > 0 && size.Y > 0 {
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(crop, &resized, size, 0, 0, gocv.InterpolationArea)
		out = resized
	}

	name := filepath.Join(dir, fmt.Sprintf("%06d.jpg", frame+1))

	ok := gocv.IMWriteWithParams(name, out,
		[]int{int(gocv.IMWriteJpegQuality), jpegQuality})
	if !ok {
		return fmt.Errorf("error writing crop image %s", name)
	}

	return nil
}

// cropFrame extracts the 0-based frame index from a crop image name such
// as 000017.jpg
func cropFrame(name string) (int, bool) {

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if len(stem) != 6 {
		return 0, false
	}

	n, err := strconv.Atoi(stem)
	if err != nil || n < 1 {
		return 0, false
	}

	return n - 1, true
}

// SplitCropDir relocates crop images after a tracklet split: crops at
// frames >= splitFrame move from the old tracklet's directory into the new
// tracklet's.  A missing source directory is not an error, crop dirs only
// exist once a visualization pass has run.
func SplitCropDir(root string, oldID, newID, splitFrame int) error {

	oldDir := TrackletDir(root, oldID)

	entries, err := os.ReadDir(oldDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading tracklet directory: %w", err)
	}

	newDir := TrackletDir(root, newID)

	if err := os.MkdirAll(newDir, 0755); err != nil {
		return fmt.Errorf("error creating tracklet directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".jpg") {
			continue
		}

		frame, ok := cropFrame(e.Name())
		if !ok || frame < splitFrame {
			continue
		}

		err := os.Rename(filepath.Join(oldDir, e.Name()),
			filepath.Join(newDir, e.Name()))
		if err != nil {
			return fmt.Errorf("error moving crop image: %w", err)
		}
	}

	return nil
}

// MergeCropDirs relocates crop images after a tracklet merge: every crop
// of src moves into dst's directory.  src's directory is removed once
// emptied.  Missing directories are not an error.
func MergeCropDirs(root string, dst, src int) error {

	srcDir := TrackletDir(root, src)

	entries, err := os.ReadDir(srcDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading tracklet directory: %w", err)
	}

	dstDir := TrackletDir(root, dst)

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("error creating tracklet directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".jpg") {
			continue
		}

		if _, ok := cropFrame(e.Name()); !ok {
			continue
		}

		target := filepath.Join(dstDir, e.Name())

		// merged tracklets share no frames, but never clobber a crop if
		// the directories disagree with the array
		if _, err := os.Stat(target); err == nil {
			continue
		}

		err := os.Rename(filepath.Join(srcDir, e.Name()), target)
		if err != nil {
			return fmt.Errorf("error moving crop image: %w", err)
		}
	}

	// remove src dir if nothing is left in it
	if rest, err := os.ReadDir(srcDir); err == nil && len(rest) == 0 {
		os.Remove(srcDir)
	}

	return nil
}
