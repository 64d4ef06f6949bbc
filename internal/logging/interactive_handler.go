package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/isseis/cli-utils/internal/color"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired = errors.New("InteractiveHandler: Writer is required")
)

// InteractiveHandler is a slog handler producing short human-readable lines
// for a terminal: level tag, message, then key=value attributes. The level
// tag is colored when UseColor is set.
type InteractiveHandler struct {
	mu       *sync.Mutex
	writer   io.Writer
	level    slog.Leveler
	useColor bool
	attrs    []slog.Attr
	groups   []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle; nil means info
	Level slog.Leveler

	// Writer is the output destination
	Writer io.Writer

	// UseColor enables ANSI colors on the level tag
	UseColor bool
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	return &InteractiveHandler{
		mu:       &sync.Mutex{},
		writer:   opts.Writer,
		level:    level,
		useColor: opts.UseColor,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes a single line for the record.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(levelTag(r.Level, h.useColor))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	prefix := groupPrefix(h.groups)
	for _, attr := range h.attrs {
		appendAttr(&sb, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	prefix := groupPrefix(h.groups)
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		newAttrs = append(newAttrs, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	clone := *h
	clone.groups = newGroups
	return &clone
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, ".") + "."
}

func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			appendAttr(sb, nested, a)
		}
		return
	}

	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(attr.Value.String())
}

// levelTag returns the bracketed level name, colored by severity.
func levelTag(level slog.Level, useColor bool) string {
	tag := "[" + level.String() + "]"

	var c color.Color
	switch {
	case level >= slog.LevelError:
		c = color.Red
	case level >= slog.LevelWarn:
		c = color.Bold
	case level >= slog.LevelInfo:
		c = color.Green
	default:
		c = color.Blue
	}
	return color.ConditionalColor(c, useColor)(tag)
}
