package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendedLines(t *testing.T) {
	tests := []struct {
		name string
		prev []string
		next []string
		want []string
	}{
		{
			name: "first batch is all new",
			prev: nil,
			next: []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "single appended line",
			prev: []string{"a", "b", "c"},
			next: []string{"b", "c", "d"},
			want: []string{"d"},
		},
		{
			name: "several appended lines",
			prev: []string{"a", "b"},
			next: []string{"a", "b", "c", "d"},
			want: []string{"c", "d"},
		},
		{
			name: "unchanged batch",
			prev: []string{"a", "b"},
			next: []string{"a", "b"},
			want: []string{},
		},
		{
			name: "no overlap counts as all new",
			prev: []string{"a", "b"},
			next: []string{"x", "y"},
			want: []string{"x", "y"},
		},
		{
			name: "rewritten shorter file",
			prev: []string{"a", "b", "c"},
			next: []string{"z"},
			want: []string{"z"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := appendedLines(tc.prev, tc.next)
			assert.Equal(t, tc.want, append([]string{}, got...))
		})
	}
}

func TestPlainPrinterDeliver(t *testing.T) {
	var buf bytes.Buffer
	p := newPlainPrinter(&buf)

	p.deliver([]string{"one", "two"})
	assert.Equal(t, "one\ntwo\n", buf.String())

	p.deliver([]string{"two", "three"})
	assert.Equal(t, "one\ntwo\nthree\n", buf.String())

	// An unchanged batch prints nothing
	p.deliver([]string{"two", "three"})
	assert.Equal(t, "one\ntwo\nthree\n", buf.String())
}
