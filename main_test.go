package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHold(t *testing.T) {
	in, err := parseHold([]string{"right", "jump"})
	require.NoError(t, err)
	assert.Equal(t, motion.Intent{Right: true, Action: true}, in)

	in, err = parseHold(nil)
	require.NoError(t, err)
	assert.Equal(t, motion.Intent{}, in)

	_, err = parseHold([]string{"fly"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = parseHold([]string{"quit"})
	assert.ErrorContains(t, err, "cannot be held")
}

func TestSnapshotWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "walk.png")
	rootCmd.SetArgs([]string{"snapshot", "--frames", "30", "--hold", "right", "--out", out})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1400, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestSnapshotRejectsBadFrames(t *testing.T) {
	rootCmd.SetArgs([]string{"snapshot", "--frames", "0"})
	assert.Error(t, rootCmd.Execute())
}
