package config

import (
	"fmt"
	"net"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePartitionSize validates the mapped window size
func (v *Validator) ValidatePartitionSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("partition size must be positive, got %d", size)
	}
	return nil
}

// ValidateMaxBytes validates the backward scan cap against the partition size
func (v *Validator) ValidateMaxBytes(partitionSize, maxBytes int64) error {
	if maxBytes <= 0 {
		return fmt.Errorf("max bytes must be positive, got %d", maxBytes)
	}
	if partitionSize > maxBytes {
		return fmt.Errorf("partition size %d exceeds max bytes %d", partitionSize, maxBytes)
	}
	return nil
}

// ValidateMinLines validates the wanted line floor
func (v *Validator) ValidateMinLines(lines int) error {
	if lines < 0 {
		return fmt.Errorf("min lines must be >= 0, got %d", lines)
	}
	return nil
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (must be one of: %s)", level, strings.Join(validLevels, ", "))
}

// ValidateMetricsAddr validates the metrics listen address
func (v *Validator) ValidateMetricsAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("metrics address cannot be empty")
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid metrics address %s (must be host:port)", addr)
	}
	return nil
}

// ValidateConfig performs comprehensive validation
func (v *Validator) ValidateConfig(cfg *Config) []error {
	var errors []error

	// Validate tail parameters
	if err := v.ValidatePartitionSize(cfg.Tail.PartitionSize); err != nil {
		errors = append(errors, err)
	}
	if err := v.ValidateMaxBytes(cfg.Tail.PartitionSize, cfg.Tail.MaxBytes); err != nil {
		errors = append(errors, err)
	}
	if err := v.ValidateMinLines(cfg.Tail.MinLines); err != nil {
		errors = append(errors, err)
	}

	// Validate metrics
	if cfg.Metrics.Enabled {
		if err := v.ValidateMetricsAddr(cfg.Metrics.Addr); err != nil {
			errors = append(errors, err)
		}
	}

	// Validate logging
	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		errors = append(errors, err)
	}

	return errors
}
