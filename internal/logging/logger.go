// Package logging builds the slog loggers used by the command-line entry
// points. Interactive terminals get a compact, optionally colored format;
// everything else gets slog's key=value text format. Every record carries
// the run ID of the process.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/isseis/cli-utils/internal/terminal"
)

// Static errors for Options validation
var (
	ErrWriterRequired       = errors.New("logging: Writer is required")
	ErrCapabilitiesRequired = errors.New("logging: Capabilities is required")
)

// Options holds all configuration for logger setup.
type Options struct {
	Level        slog.Level
	Writer       io.Writer // Destination for log lines, usually os.Stderr
	RunID        string    // Attached to every record; generated when empty
	Capabilities *terminal.Capabilities
}

// GenerateRunID returns a new time-ordered unique run identifier.
func GenerateRunID() string {
	return ulid.Make().String()
}

// NewLogger creates a logger writing to opts.Writer.
func NewLogger(opts Options) (*slog.Logger, error) {
	if opts.Writer == nil {
		return nil, ErrWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrCapabilitiesRequired
	}

	runID := opts.RunID
	if runID == "" {
		runID = GenerateRunID()
	}

	var handler slog.Handler
	if opts.Capabilities.IsInteractive() {
		h, err := NewInteractiveHandler(InteractiveHandlerOptions{
			Level:    opts.Level,
			Writer:   opts.Writer,
			UseColor: opts.Capabilities.SupportsColor(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create interactive handler: %w", err)
		}
		handler = h
	} else {
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: opts.Level})
	}

	return slog.New(handler).With(slog.String("run_id", runID)), nil
}

// Setup creates a logger like NewLogger and installs it as the slog default.
func Setup(opts Options) (*slog.Logger, error) {
	logger, err := NewLogger(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
