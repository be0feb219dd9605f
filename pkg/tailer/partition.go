package tailer

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// partition is one decoded window of the target file.
type partition struct {
	text  string
	start int64
	size  int64
}

// mapPartitions scans the file backward from its end in windows of
// partitionSize bytes, decoding each window, until it has seen more than
// want+1 newlines, reached the beginning of the file, or hit the iteration
// cap implied by maxBytes. The extra line beyond want lets a leading partial
// line be completed by the next older window. Partitions are returned in
// file order, the oldest selected window first.
func mapPartitions(r io.ReaderAt, length, partitionSize, maxBytes int64, want int) ([]partition, error) {
	if length == 0 {
		return nil, nil
	}

	maxIterations := int((maxBytes + partitionSize - 1) / partitionSize)
	parts := make([]partition, 0, maxIterations)
	lines := 0

	for k := 1; k <= maxIterations; k++ {
		w := window(length, partitionSize, k)
		if w.size() <= 0 {
			break
		}

		buf := make([]byte, w.size())
		n, err := r.ReadAt(buf, w.start)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read window [%d,%d): %w", w.start, w.end, err)
		}
		// The file may have shrunk since it was measured; keep what is there.
		buf = buf[:n]

		text, err := decodeText(buf)
		if err != nil {
			return nil, fmt.Errorf("window [%d,%d): %w", w.start, w.end, err)
		}

		parts = append(parts, partition{text: text, start: w.start, size: int64(n)})
		lines += strings.Count(text, lineDelimiter)

		if lines > want+1 || w.start == 0 {
			break
		}
	}

	// The scan ran newest to oldest; flip into file order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return parts, nil
}

// decodeText decodes buf as single-byte text, rejecting bytes outside the
// 7-bit range. The whole read fails on the first offending byte; no partial
// content is produced.
func decodeText(buf []byte) (string, error) {
	for i, b := range buf {
		if b > 0x7F {
			return "", fmt.Errorf("%w: byte 0x%02X at offset %d", ErrDecode, b, i)
		}
	}
	return string(buf), nil
}
