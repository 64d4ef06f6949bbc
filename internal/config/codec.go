package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format for Logging.
type Format string

const (
	// FormatTOML is the TOML format
	FormatTOML Format = "toml"

	// FormatYAML is the YAML format
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than TOML and YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// loggingSpec is the decoded form of a logging document. Pointer fields
// distinguish absent keys from zero values.
type loggingSpec struct {
	Enabled     *bool   `toml:"enabled" yaml:"enabled"`
	Level       *string `toml:"level" yaml:"level"`
	Destination *string `toml:"destination" yaml:"destination"`
}

// loggingDoc is the encoded form of a logging document.
type loggingDoc struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	Level       string `toml:"level" yaml:"level"`
	Destination string `toml:"destination" yaml:"destination"`
}

// Decode parses a logging document. Keys that are absent keep the values
// of NewLogging.
func Decode(data []byte, format Format) (*Logging, error) {
	var spec loggingSpec
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse TOML logging config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse YAML logging config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	l := NewLogging()
	if spec.Enabled != nil {
		l.SetEnabled(*spec.Enabled)
	}
	if spec.Level != nil {
		var level LogLevel
		if err := level.UnmarshalText([]byte(*spec.Level)); err != nil {
			return nil, err
		}
		l.SetLevel(level)
	}
	if spec.Destination != nil {
		destination, err := ParseLogOutput(*spec.Destination)
		if err != nil {
			return nil, err
		}
		l.SetDestination(destination)
	}
	return l, nil
}

// Encode serializes l in the given format. Values that Decode would reject
// are reported instead of written.
func Encode(l *Logging, format Format) ([]byte, error) {
	level, err := l.Level().MarshalText()
	if err != nil {
		return nil, err
	}
	destination, err := l.Destination().MarshalText()
	if err != nil {
		return nil, err
	}

	doc := loggingDoc{
		Enabled:     l.Enabled(),
		Level:       string(level),
		Destination: string(destination),
	}

	switch format {
	case FormatTOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode TOML logging config: %w", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML logging config: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
