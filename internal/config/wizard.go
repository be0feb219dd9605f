package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Wizard provides an interactive configuration wizard
type Wizard struct {
	reader *bufio.Reader
}

// NewWizard creates a new configuration wizard
func NewWizard() *Wizard {
	return &Wizard{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run runs the interactive configuration wizard
func (w *Wizard) Run() (*Config, error) {
	fmt.Println("=== Logtail Configuration Wizard ===")
	fmt.Println()

	cfg := DefaultConfig()
	validator := NewValidator()

	// Tail parameters
	fmt.Println("Tail parameters:")
	fmt.Println()

	// Partition size
	for {
		fmt.Printf("Partition size in bytes [%d]: ", cfg.Tail.PartitionSize)
		raw, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if raw == "" {
			break
		}

		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Printf("Error: %s is not a number\n", raw)
			continue
		}

		if err := validator.ValidatePartitionSize(size); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		cfg.Tail.PartitionSize = size
		break
	}

	// Max bytes
	for {
		fmt.Printf("Max bytes scanned per read [%d]: ", cfg.Tail.MaxBytes)
		raw, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if raw == "" {
			if err := validator.ValidateMaxBytes(cfg.Tail.PartitionSize, cfg.Tail.MaxBytes); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			break
		}

		max, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Printf("Error: %s is not a number\n", raw)
			continue
		}

		if err := validator.ValidateMaxBytes(cfg.Tail.PartitionSize, max); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		cfg.Tail.MaxBytes = max
		break
	}

	// Min lines
	for {
		fmt.Printf("Minimum lines per read [%d]: ", cfg.Tail.MinLines)
		raw, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if raw == "" {
			break
		}

		lines, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("Error: %s is not a number\n", raw)
			continue
		}

		if err := validator.ValidateMinLines(lines); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		cfg.Tail.MinLines = lines
		break
	}

	fmt.Println()

	// Viewer
	fmt.Println("Viewer:")
	fmt.Print("Follow new lines automatically? (y/n) [y]: ")
	follow, err := w.readLine()
	if err != nil {
		return nil, err
	}
	cfg.UI.Follow = follow == "" || strings.ToLower(follow) == "y"

	fmt.Println()

	// Metrics
	fmt.Println("Metrics:")
	fmt.Print("Expose Prometheus metrics? (y/n) [n]: ")
	enable, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if strings.ToLower(enable) == "y" {
		cfg.Metrics.Enabled = true

		for {
			fmt.Printf("Metrics listen address [%s]: ", cfg.Metrics.Addr)
			addr, err := w.readLine()
			if err != nil {
				return nil, err
			}

			if addr == "" {
				break
			}

			if err := validator.ValidateMetricsAddr(addr); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}

			cfg.Metrics.Addr = addr
			break
		}
	}

	fmt.Println()

	// Log Level
	fmt.Println("Logging:")
	fmt.Print("Log level (debug/info/warn/error) [info]: ")
	level, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if level != "" {
		if err := validator.ValidateLogLevel(level); err != nil {
			fmt.Printf("Warning: %v, using default (info)\n", err)
		} else {
			cfg.Logging.Level = level
		}
	}

	fmt.Println()
	fmt.Println("Configuration complete!")

	return cfg, nil
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
