package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, int64(1024), cfg.Tail.PartitionSize)
	assert.Equal(t, int64(1024*1000), cfg.Tail.MaxBytes)
	assert.Equal(t, 10, cfg.Tail.MinLines)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, 50, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 7, cfg.Logging.MaxAgeDays)
	assert.True(t, cfg.UI.Follow)
	assert.True(t, cfg.UI.StatusBar)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9600", cfg.Metrics.Addr)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()

		err := cfg.Validate()
		assert.NoError(t, err)
	})

	t.Run("zero partition size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tail.PartitionSize = 0

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "partition size")
	})

	t.Run("partition size exceeds max bytes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tail.PartitionSize = 4096
		cfg.Tail.MaxBytes = 1024

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds max bytes")
	})

	t.Run("negative min lines", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tail.MinLines = -1

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "min lines")
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "verbose"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "log level")
	})

	t.Run("invalid metrics address", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = "localhost"

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "metrics address")
	})

	t.Run("metrics address ignored when disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Metrics.Enabled = false
		cfg.Metrics.Addr = "localhost"

		err := cfg.Validate()
		assert.NoError(t, err)
	})
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()

	str := cfg.String()
	assert.NotEmpty(t, str)
	assert.Contains(t, str, "partition_size")
	assert.Contains(t, str, "max_bytes")
}
