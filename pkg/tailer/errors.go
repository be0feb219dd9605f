package tailer

import "errors"

var (
	// ErrInvalidConfig is returned by New when construction parameters are
	// missing or inconsistent.
	ErrInvalidConfig = errors.New("invalid tail configuration")

	// ErrDecode is returned by a read when the file contains bytes that are
	// not valid single-byte text.
	ErrDecode = errors.New("malformed text content")
)
