package adapters

import (
	"fmt"
	"io"
	"os"
	"sync"

	"resume-composer/internal/logging/types"
)

// StdoutAdapter implements the LogAdapter interface for console output
type StdoutAdapter struct {
	name      string
	format    string
	colorized bool
	out       io.Writer
	mu        sync.Mutex
}

// StdoutConfig represents configuration for the stdout adapter
type StdoutConfig struct {
	Format    string    `yaml:"format"`    // json or text
	Colorized bool      `yaml:"colorized"` // enable colored output
	Stderr    bool      `yaml:"stderr"`    // write to stderr instead of stdout
	Writer    io.Writer `yaml:"-"`         // overrides the destination when set
}

// NewStdoutAdapter creates a new stdout adapter
func NewStdoutAdapter(name string, config StdoutConfig) *StdoutAdapter {
	out := config.Writer
	if out == nil {
		out = os.Stdout
		if config.Stderr {
			out = os.Stderr
		}
	}

	return &StdoutAdapter{
		name:      name,
		format:    config.Format,
		colorized: config.Colorized,
		out:       out,
	}
}

// Write writes a log entry as one line
func (a *StdoutAdapter) Write(entry *types.LogEntry) error {
	output, err := formatEntry(entry, a.format, a.colorized)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	_, err = fmt.Fprintln(a.out, output)
	return err
}

// Close is a no-op for console output
func (a *StdoutAdapter) Close() error {
	return nil
}

// Health always succeeds for console output
func (a *StdoutAdapter) Health() error {
	return nil
}

// Name returns the name of the adapter
func (a *StdoutAdapter) Name() string {
	return a.name
}
