// Package color provides helpers for coloring terminal output using fixed
// ANSI escape sequences. Every helper returns a new string of the form
// prefix + text + reset; nothing here inspects the terminal.
//
//nolint:revive // package name conflicts with standard library
package color

import "fmt"

// ANSI escape codes
const (
	resetCode = "\033[0m"
	redCode   = "\033[31m"
	greenCode = "\033[32m"
	blueCode  = "\033[34m"
	boldCode  = "\033[1m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Sprintf formats according to a format specifier and wraps the result.
func (c Color) Sprintf(format string, args ...any) string {
	return c(fmt.Sprintf(format, args...))
}

// NoColor returns text unchanged.
func NoColor(text string) string {
	return text
}

// ConditionalColor returns c when enabled is true and NoColor otherwise.
func ConditionalColor(c Color, enabled bool) Color {
	if !enabled {
		return NoColor
	}
	return c
}

// Predefined color functions
var (
	// Red colors text in red
	Red = NewColor(redCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Blue colors text in blue
	Blue = NewColor(blueCode)

	// Bold renders text in bold weight
	Bold = NewColor(boldCode)

	// Reset wraps text in reset codes on both sides
	Reset = NewColor(resetCode)
)
