package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")

	exists, err := FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	exists, err = FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFlagChannel(t *testing.T) {
	c := make(chan struct{}, 1)

	FlagChannel(c)
	FlagChannel(c)
	FlagChannel(c)

	assert.Len(t, c, 1)
	<-c
	assert.Len(t, c, 0)
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameInterval(0))
	assert.Equal(t, time.Second/30, FrameInterval(30))
}
