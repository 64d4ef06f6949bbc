// Package terminal decides whether output should be treated as interactive
// and whether ANSI color should be emitted, combining command-line
// overrides, the NO_COLOR / CLICOLOR conventions and TERM inspection.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Options contains command-line overrides. Force flags take precedence over
// their Disable / NonInteractive counterparts.
type Options struct {
	ForceColor   bool // Force color output regardless of environment
	DisableColor bool // Disable color output regardless of environment

	ForceInteractive    bool // Treat output as interactive regardless of environment
	ForceNonInteractive bool // Treat output as non-interactive regardless of environment

	// Output is the stream whose terminal status is checked. Defaults to
	// os.Stdout.
	Output *os.File
}

// Capabilities reports what the current output stream supports.
type Capabilities struct {
	options Options
}

// NewCapabilities creates a Capabilities instance with the given options.
func NewCapabilities(options Options) *Capabilities {
	if options.Output == nil {
		options.Output = os.Stdout
	}
	return &Capabilities{options: options}
}

// IsInteractive returns true if output should be treated as interactive.
//
// Priority:
//  1. Command line options
//  2. CI environment detection
//  3. Terminal detection on the output stream
func (c *Capabilities) IsInteractive() bool {
	if c.options.ForceInteractive {
		return true
	}
	if c.options.ForceNonInteractive {
		return false
	}
	if isCIEnvironment() {
		return false
	}
	return term.IsTerminal(int(c.options.Output.Fd()))
}

// SupportsColor returns true if color output should be enabled.
//
// Priority:
//  1. Command line options
//  2. CLICOLOR_FORCE (truthy)
//  3. NO_COLOR (any value, even empty)
//  4. Non-interactive output or a TERM without color support disables color
//  5. CLICOLOR, when set
//  6. Enabled
func (c *Capabilities) SupportsColor() bool {
	if enabled, explicit := c.explicitPreference(); explicit {
		return enabled
	}

	if !c.IsInteractive() || !termSupportsColor(os.Getenv("TERM")) {
		return false
	}

	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}

// HasExplicitPreference returns true if color was forced on or off through
// options, CLICOLOR_FORCE or NO_COLOR. CLICOLOR alone is not explicit since
// it only applies to interactive output.
func (c *Capabilities) HasExplicitPreference() bool {
	_, explicit := c.explicitPreference()
	return explicit
}

func (c *Capabilities) explicitPreference() (enabled, explicit bool) {
	if c.options.ForceColor {
		return true, true
	}
	if c.options.DisableColor {
		return false, true
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true, true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false, true
	}
	return false, false
}
