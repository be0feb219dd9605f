package tailer

// span is a half-open byte range [start, end) within the target file.
type span struct {
	start int64
	end   int64
}

func (s span) size() int64 { return s.end - s.start }

// window returns the k-th backward window for a file of the given length,
// counting from k=1 at end-of-file. Both bounds are clamped at byte 0, so the
// oldest selected window may be shorter than partitionSize and a window past
// the beginning of the file comes back empty.
func window(length, partitionSize int64, k int) span {
	start := length - int64(k)*partitionSize
	end := length - int64(k-1)*partitionSize
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	return span{start: start, end: end}
}
