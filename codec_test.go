package mot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestArray returns an array exercising the cases the codec must
// preserve: sparse presence, a zero-coordinate box and non-sequential IDs
func buildTestArray(t *testing.T) *Array {
	t.Helper()

	a := NewArray([]int{3, 7, 12}, 6)

	require.NoError(t, a.Set(3, 0, NewBox(10, 20, 30, 40)))
	require.NoError(t, a.Set(3, 1, NewBox(11.5, 21.5, 30, 40)))
	require.NoError(t, a.Set(7, 5, NewBox(0, 0, 0, 0)))
	require.NoError(t, a.Set(12, 2, NewBox(-4, 7, 12.25, 9)))

	return a
}

func TestSaveLoadRoundTrip(t *testing.T) {

	a := buildTestArray(t)
	path := filepath.Join(t.TempDir(), "seq01.npy")

	require.NoError(t, Save(a, path))

	got, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(a, got, arrayComparer); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}

	// the zero box must survive as present, not collapse into absent
	b, ok := got.At(7, 5)
	require.True(t, ok)
	assert.Equal(t, Box{}, b)
}

func TestSaveLoadEmptyArray(t *testing.T) {

	a := NewArray(nil, 0)
	path := filepath.Join(t.TempDir(), "empty.npy")

	require.NoError(t, Save(a, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumTracks())
	assert.Equal(t, 0, got.NumFrames())
	assert.True(t, a.Equal(got))
}

func TestSaveCreatesParentDirs(t *testing.T) {

	a := buildTestArray(t)
	path := filepath.Join(t.TempDir(), "nested", "deeper", "seq01.npy")

	require.NoError(t, Save(a, path))

	_, err := Load(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {

	_, err := Load(filepath.Join(t.TempDir(), "nope.npy"))
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {

	a := NewArray([]int{2, 1}, 3)
	require.NoError(t, a.Set(2, 0, NewBox(1, 2, 3, 4)))
	require.NoError(t, a.Set(1, 0, NewBox(5, 6, 7, 8)))
	require.NoError(t, a.Set(1, 2, NewBox(9, 10, 11, 12)))

	var buf bytes.Buffer
	require.NoError(t, WriteText(a, &buf))

	// frame-major order, IDs ascending within a frame
	want := "0,1,5.00,6.00,7.00,8.00,1,1,1\n" +
		"0,2,1.00,2.00,3.00,4.00,1,1,1\n" +
		"2,1,9.00,10.00,11.00,12.00,1,1,1\n"

	assert.Equal(t, want, buf.String())
}

func TestTextRoundTrip(t *testing.T) {

	a := buildTestArray(t)

	var buf bytes.Buffer
	require.NoError(t, WriteText(a, &buf))

	got, err := Parse(&buf, WithNumFrames(a.NumFrames()))
	require.NoError(t, err)

	// text export orders tracklets by first frame of appearance, so
	// compare presence and boxes per ID rather than row order
	assert.ElementsMatch(t, a.IDs(), got.IDs())

	for _, id := range a.IDs() {
		assert.Equal(t, a.Present(id), got.Present(id), "tracklet %d presence", id)
	}
}
