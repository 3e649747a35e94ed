package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackletDir(t *testing.T) {
	assert.Equal(t, filepath.Join("vis", "tracklet_0007"), TrackletDir("vis", 7))
	assert.Equal(t, filepath.Join("vis", "tracklet_0123"), TrackletDir("vis", 123))
}

func TestCropFrame(t *testing.T) {

	tests := []struct {
		name  string
		frame int
		ok    bool
	}{
		{"000001.jpg", 0, true},
		{"000017.jpg", 16, true},
		{"17.jpg", 0, false},
		{"000000.jpg", 0, false},
		{"_manifest.csv", 0, false},
		{"abcdef.jpg", 0, false},
	}

	for _, tt := range tests {
		frame, ok := cropFrame(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if tt.ok {
			assert.Equal(t, tt.frame, frame, tt.name)
		}
	}
}

// writeFakeCrops populates a tracklet dir with empty jpg files for the
// given 0-based frames
func writeFakeCrops(t *testing.T, root string, id int, frames ...int) {
	t.Helper()

	dir := TrackletDir(root, id)
	require.NoError(t, os.MkdirAll(dir, 0755))

	for _, f := range frames {
		path := filepath.Join(dir, frameJPG(f))
		require.NoError(t, os.WriteFile(path, []byte("jpg"), 0644))
	}
}

// frameJPG names a crop file for a 0-based frame the way writeCrop does
func frameJPG(frame int) string {
	return fmt.Sprintf("%06d.jpg", frame+1)
}

func cropFrames(t *testing.T, root string, id int) []int {
	t.Helper()

	entries, err := os.ReadDir(TrackletDir(root, id))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var frames []int
	for _, e := range entries {
		if f, ok := cropFrame(e.Name()); ok {
			frames = append(frames, f)
		}
	}
	return frames
}

func TestSplitCropDir(t *testing.T) {

	root := t.TempDir()
	writeFakeCrops(t, root, 5, 2, 3, 4, 6, 7)

	require.NoError(t, SplitCropDir(root, 5, 9, 5))

	assert.Equal(t, []int{2, 3, 4}, cropFrames(t, root, 5))
	assert.Equal(t, []int{6, 7}, cropFrames(t, root, 9))
}

func TestSplitCropDirMissingSource(t *testing.T) {
	assert.NoError(t, SplitCropDir(t.TempDir(), 5, 9, 3))
}

func TestMergeCropDirs(t *testing.T) {

	root := t.TempDir()
	writeFakeCrops(t, root, 1, 0, 1)
	writeFakeCrops(t, root, 2, 4, 5)

	require.NoError(t, MergeCropDirs(root, 1, 2))

	assert.Equal(t, []int{0, 1, 4, 5}, cropFrames(t, root, 1))

	// emptied source dir is removed
	_, err := os.Stat(TrackletDir(root, 2))
	assert.True(t, os.IsNotExist(err))
}

func TestMergeCropDirsMissingSource(t *testing.T) {
	assert.NoError(t, MergeCropDirs(t.TempDir(), 1, 2))
}
