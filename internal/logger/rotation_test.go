package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRotatingWriter(t *testing.T) {
	t.Run("opens the log file", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "logtail.log")

		rw, err := NewRotatingWriter(logFile, 10, 7, false)
		require.NoError(t, err)
		defer rw.Close()

		_, err = os.Stat(logFile)
		assert.NoError(t, err)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "nested", "logtail.log")

		rw, err := NewRotatingWriter(logFile, 10, 7, false)
		require.NoError(t, err)
		defer rw.Close()

		_, err = os.Stat(filepath.Dir(logFile))
		assert.NoError(t, err)
	})
}

func TestRotatingWriter_Write(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "logtail.log")

	rw, err := NewRotatingWriter(logFile, 1, 7, false)
	require.NoError(t, err)
	defer rw.Close()

	data := []byte("delivered batch of 12 lines\n")
	n, err := rw.Write(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "delivered batch")
}

func TestRotatingWriter_RotatesPastLimit(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "logtail.log")

	// 0 MB limit forces a rotation on every write after the first.
	rw, err := NewRotatingWriter(logFile, 0, 7, false)
	require.NoError(t, err)
	defer rw.Close()

	_, err = rw.Write([]byte(strings.Repeat("x", 128)))
	require.NoError(t, err)
	_, err = rw.Write([]byte(strings.Repeat("y", 128)))
	require.NoError(t, err)

	rotated, err := filepath.Glob(logFile + ".*")
	require.NoError(t, err)
	assert.NotEmpty(t, rotated)
}

func TestRotatingWriter_CompressFile(t *testing.T) {
	tmpDir := t.TempDir()
	rotated := filepath.Join(tmpDir, "logtail.log.20250101-000000")
	require.NoError(t, os.WriteFile(rotated, []byte("old entries"), 0644))

	rw := &RotatingWriter{compress: true}
	require.NoError(t, rw.compressFile(rotated))

	_, err := os.Stat(rotated + ".gz")
	assert.NoError(t, err)

	_, err = os.Stat(rotated)
	assert.True(t, os.IsNotExist(err))
}

func TestRotatingWriter_Cleanup(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "logtail.log")

	stale := logFile + ".20200101-120000"
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))
	staleTime := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(stale, staleTime, staleTime))

	fresh := logFile + ".fresh"
	require.NoError(t, os.WriteFile(fresh, []byte("fresh"), 0644))

	rw, err := NewRotatingWriter(logFile, 10, 7, false)
	require.NoError(t, err)
	defer rw.Close()

	rw.cleanup()

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}
