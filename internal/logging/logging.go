// Package logging configures the structured logger shared by every
// WalletPal component.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Common field names.
const (
	FieldComponent = "component"
	FieldPath      = "path"
	FieldBackend   = "backend"
	FieldLine      = "line"
	FieldReason    = "reason"
	FieldError     = "error"
	FieldCount     = "count"
)

// Component names.
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentDatafile = "datafile"
	ComponentConfig   = "config"
	ComponentTUI      = "tui"
)

// Config holds logger configuration.
type Config struct {
	Level  slog.Level
	Output io.Writer // nil discards everything
}

// New builds a text logger and installs it as the slog default.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler = slog.DiscardHandler
	if cfg.Output != nil {
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: cfg.Level})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// For returns the default logger tagged with a component name.
func For(component string) *slog.Logger {
	return slog.Default().With(FieldComponent, component)
}

// OpenFile opens path for appending log lines, creating its directory.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
