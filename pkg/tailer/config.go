package tailer

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultPartitionSize is the byte size of one mapped window.
	DefaultPartitionSize int64 = 1024

	// DefaultMaxBytes caps how far a single read scans back from the end of
	// the file.
	DefaultMaxBytes int64 = 1024 * 1000
)

// Config holds the construction parameters for a Session.
type Config struct {
	// Path is the file to tail. Required.
	Path string

	// PartitionSize is the byte size of each mapped window. Defaults to
	// DefaultPartitionSize.
	PartitionSize int64

	// MaxBytes caps the total backward scan per read. Must be at least
	// PartitionSize. Defaults to DefaultMaxBytes.
	MaxBytes int64

	// WantLines reports how many lines the consumer currently wants. It is
	// consulted exactly once per read. Required.
	WantLines func() int

	// OnBatch receives each reconstructed line batch, oldest line first.
	// Each batch fully replaces the previous one. Required.
	OnBatch func(lines []string)

	// OnDecodeError receives a human-readable message when a read fails on
	// malformed text. Optional.
	OnDecodeError func(msg string)

	// OnReadError receives the error of any failed read. Optional.
	OnReadError func(err error)

	// Fs is the filesystem the target is read from. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// Logger is the logger for session events. Defaults to the global
	// zerolog logger.
	Logger *zerolog.Logger
}

func (c *Config) applyDefaults() {
	if c.PartitionSize == 0 {
		c.PartitionSize = DefaultPartitionSize
	}
	if c.MaxBytes == 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
}

func (c *Config) validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidConfig)
	}
	if c.WantLines == nil {
		return fmt.Errorf("%w: WantLines policy is required", ErrInvalidConfig)
	}
	if c.OnBatch == nil {
		return fmt.Errorf("%w: OnBatch callback is required", ErrInvalidConfig)
	}
	if c.PartitionSize <= 0 {
		return fmt.Errorf("%w: partition size must be positive, got %d", ErrInvalidConfig, c.PartitionSize)
	}
	if c.PartitionSize > c.MaxBytes {
		return fmt.Errorf("%w: partition size %d exceeds max bytes %d", ErrInvalidConfig, c.PartitionSize, c.MaxBytes)
	}
	return nil
}
