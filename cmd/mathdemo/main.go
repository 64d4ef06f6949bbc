// Package main prints the results of the mathutil functions for a fixed set
// of inputs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/isseis/cli-utils/internal/logging"
	"github.com/isseis/cli-utils/internal/mathutil"
	"github.com/isseis/cli-utils/internal/terminal"
)

const header = "--- Testing my_library from my_app ---"

func main() {
	caps := terminal.NewCapabilities(terminal.Options{})

	logger, err := logging.Setup(logging.Options{
		Level:        slog.LevelInfo,
		Writer:       os.Stderr,
		Capabilities: terminal.NewCapabilities(terminal.Options{Output: os.Stderr}),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(colorable.NewColorableStdout(), caps.SupportsColor()); err != nil {
		logger.Error("Math demo failed", "error", err)
		os.Exit(1)
	}
}

// run writes the demo report to w. The header is bold when useColor is set.
func run(w io.Writer, useColor bool) error {
	bold := color.New(color.Bold)
	if useColor {
		bold.EnableColor()
	} else {
		bold.DisableColor()
	}

	if _, err := fmt.Fprintln(w, bold.Sprint(header)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	lines := []string{
		fmt.Sprintf("15 + 30 = %d", mathutil.Add(15, 30)),
		fmt.Sprintf("Factorial of 6 is %d", mathutil.Factorial(6)),
		fmt.Sprintf("GCD of 54 and 24 is %d", mathutil.GCD(54, 24)),
		fmt.Sprintf("Is 13 prime? %t", mathutil.IsPrime(13)),
		fmt.Sprintf("Is 12 prime? %t", mathutil.IsPrime(12)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	slog.Info("Math demo complete", "results", len(lines))
	return nil
}
