// Package logging builds the zap logger used across the TUI. Log output
// goes to a file so it never corrupts the terminal; with no file
// configured everything is a no-op.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New creates a file-backed logger, or a no-op logger when path is empty.
func New(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
