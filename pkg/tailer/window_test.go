package tailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		length    int64
		partition int64
		k         int
		start     int64
		end       int64
	}{
		{"first window at end of file", 100, 10, 1, 90, 100},
		{"second window", 100, 10, 2, 80, 90},
		{"last full window", 100, 10, 10, 0, 10},
		{"clamped start", 25, 10, 3, 0, 5},
		{"window past beginning is empty", 25, 10, 4, 0, 0},
		{"file shorter than one partition", 7, 1024, 1, 0, 7},
		{"empty file", 0, 10, 1, 0, 0},
		{"partition of one byte", 3, 1, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := window(tt.length, tt.partition, tt.k)
			assert.Equal(t, tt.start, w.start)
			assert.Equal(t, tt.end, w.end)
		})
	}
}

func TestWindow_CoversFileExactly(t *testing.T) {
	// Successive windows tile the file with no gaps or overlaps, newest
	// first.
	const length, partition = int64(103), int64(10)

	prevStart := length
	for k := 1; ; k++ {
		w := window(length, partition, k)
		if w.size() <= 0 {
			break
		}
		assert.Equal(t, prevStart, w.end)
		prevStart = w.start
	}
	assert.Equal(t, int64(0), prevStart)
}
