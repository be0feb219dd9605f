package app

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// plainPrinter turns full-replacement batches into append-only output, so
// plain mode behaves like tail -f on a pipe.
type plainPrinter struct {
	mu   sync.Mutex
	out  io.Writer
	prev []string
}

func newPlainPrinter(out io.Writer) *plainPrinter {
	return &plainPrinter{out: out}
}

func (p *plainPrinter) deliver(lines []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, line := range appendedLines(p.prev, lines) {
		fmt.Fprintln(p.out, line)
	}
	p.prev = append([]string(nil), lines...)
}

// appendedLines returns the part of next that extends prev: everything after
// the longest overlap between a suffix of prev and a prefix of next. When
// nothing overlaps the whole batch counts as new, which also covers a file
// that was truncated and rewritten.
func appendedLines(prev, next []string) []string {
	max := len(prev)
	if len(next) < max {
		max = len(next)
	}

	for k := max; k > 0; k-- {
		if slices.Equal(prev[len(prev)-k:], next[:k]) {
			return next[k:]
		}
	}
	return next
}
