package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the main logtail configuration
type Config struct {
	// Tail reading parameters
	Tail TailConfig `json:"tail" mapstructure:"tail"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// UI
	UI UIConfig `json:"ui" mapstructure:"ui"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// TailConfig holds the backward scan parameters
type TailConfig struct {
	// PartitionSize is the byte size of one mapped window
	PartitionSize int64 `json:"partition_size" mapstructure:"partition_size"`

	// MaxBytes caps how far a read scans back from the end of the file
	MaxBytes int64 `json:"max_bytes" mapstructure:"max_bytes"`

	// MinLines is the floor for the wanted line count, used when the UI
	// cannot provide one (plain mode, one-shot reads)
	MinLines int `json:"min_lines" mapstructure:"min_lines"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file" mapstructure:"file"`
	Console    bool   `json:"console" mapstructure:"console"`
	Pretty     bool   `json:"pretty" mapstructure:"pretty"`
	MaxSizeMB  int    `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxAgeDays int    `json:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

// UIConfig holds viewer configuration
type UIConfig struct {
	// Follow keeps the viewport pinned to the newest line
	Follow bool `json:"follow" mapstructure:"follow"`

	// StatusBar shows the path/state bar under the viewport
	StatusBar bool `json:"status_bar" mapstructure:"status_bar"`
}

// MetricsConfig holds the optional Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Addr    string `json:"addr" mapstructure:"addr"`
}

// DefaultConfig returns the default logtail configuration
func DefaultConfig() *Config {
	return &Config{
		Tail: TailConfig{
			PartitionSize: 1024,
			MaxBytes:      1024 * 1000,
			MinLines:      10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			Pretty:     true,
			MaxSizeMB:  50,
			MaxAgeDays: 7,
			Compress:   true,
		},
		UI: UIConfig{
			Follow:    true,
			StatusBar: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    "127.0.0.1:9600",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	errs := NewValidator().ValidateConfig(c)
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errs[0])
	}
	return nil
}

// String renders the configuration as indented JSON
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}
