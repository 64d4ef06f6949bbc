package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a style name cannot be parsed.
var ErrUnknownStyle = errors.New("unknown style")

// Style selects one of the fixed text styles a ColorString can be painted
// with.
type Style int

const (
	// StyleRed paints text red
	StyleRed Style = iota
	// StyleGreen paints text green
	StyleGreen
	// StyleBlue paints text blue
	StyleBlue
	// StyleBold paints text bold
	StyleBold
)

type styleInfo struct {
	name  string
	code  string
	color Color
}

var styles = [...]styleInfo{
	StyleRed:   {"red", redCode, Red},
	StyleGreen: {"green", greenCode, Green},
	StyleBlue:  {"blue", blueCode, Blue},
	StyleBold:  {"bold", boldCode, Bold},
}

// Styles returns every defined style in declaration order.
func Styles() []Style {
	return []Style{StyleRed, StyleGreen, StyleBlue, StyleBold}
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styles)
}

// Code returns the ANSI escape sequence that starts the style.
func (s Style) Code() string {
	if !s.Valid() {
		return ""
	}
	return styles[s].code
}

// Color returns the color function for the style. Invalid styles return
// NoColor.
func (s Style) Color() Color {
	if !s.Valid() {
		return NoColor
	}
	return styles[s].color
}

// String returns the lowercase style name.
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styles[s].name
}

// ParseStyle parses a case-insensitive style name.
func ParseStyle(name string) (Style, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, info := range styles {
		if info.name == lower {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of: red, green, blue, bold)", ErrUnknownStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
