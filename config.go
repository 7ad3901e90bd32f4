// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package stdouttext // import "go.opentelemetry.io/stdouttext"

import (
	"errors"
	"fmt"
)

const defaultOutputPath = "stdout"

// Config defines configuration for the stdout text exporter.
type Config struct {
	// OutputPath is where the rendered text goes. The special strings
	// "stdout" and "stderr" are interpreted as os.Stdout and os.Stderr
	// respectively. All other values are treated as file paths.
	OutputPath string `mapstructure:"output_path"`

	// BufferSize is the size in bytes of the in-memory buffer in front of
	// the sink. Zero disables buffering; every record goes straight to the
	// sink. A buffered exporter needs ForceFlush or Shutdown to guarantee
	// the text has reached the sink.
	BufferSize int `mapstructure:"buffer_size"`
}

// NewDefaultConfig returns the default configuration: unbuffered stdout.
func NewDefaultConfig() Config {
	return Config{
		OutputPath: defaultOutputPath,
	}
}

// Validate checks if the exporter configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.OutputPath == "" {
		return errors.New("output_path must not be empty")
	}
	if cfg.BufferSize < 0 {
		return fmt.Errorf("buffer_size must not be negative, got %d", cfg.BufferSize)
	}
	return nil
}
