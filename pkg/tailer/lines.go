package tailer

import "strings"

// lineDelimiter separates lines in the target file.
const lineDelimiter = "\n"

// reconstructLines stitches decoded partitions, ordered by file position,
// into complete lines, oldest line first. Fragments that straddle a window
// boundary are joined, so the output equals splitting the concatenation of
// all partitions directly. Interior empty lines are kept; a trailing run of
// delimiters produces no trailing empty lines.
func reconstructLines(parts []partition) []string {
	var lines []string
	carry := ""

	for _, p := range parts {
		fragments := strings.Split(carry+p.text, lineDelimiter)
		carry = fragments[len(fragments)-1]
		lines = append(lines, fragments[:len(fragments)-1]...)
	}

	if carry != "" {
		lines = append(lines, carry)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
