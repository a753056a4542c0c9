package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWithoutDebug(t *testing.T) {
	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
	assert.False(t, Debugging())
}

func TestInitialize_WritesToDebugFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")
	t.Cleanup(func() { _, _ = Initialize(Options{}) })

	path, err := Initialize(Options{File: logFile, MaxFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)
	assert.True(t, Debugging())

	Logger.Info("hello", "student", "Ann-Lee")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"student":"Ann-Lee"`)
}

func TestInitialize_DebugUsesStateDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { _, _ = Initialize(Options{}) })

	path, err := Initialize(Options{Debug: true, MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Equal(t, ".log", filepath.Ext(path))
	assert.FileExists(t, path)
}

func TestPruneLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 1))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestPruneLogs_UnderLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
