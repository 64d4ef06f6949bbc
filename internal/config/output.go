package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLogOutput is returned when a log destination cannot be parsed.
var ErrInvalidLogOutput = errors.New("invalid log output")

type outputKind uint8

const (
	outputStdout outputKind = iota
	outputStderr
	outputFile
)

const filePrefix = "file:"

// LogOutput is where logs are written: standard output, standard error, or
// a named file. The zero value is Stdout. Values compare with ==.
type LogOutput struct {
	kind outputKind
	path string
}

// Stdout returns the standard output destination.
func Stdout() LogOutput {
	return LogOutput{kind: outputStdout}
}

// Stderr returns the standard error destination.
func Stderr() LogOutput {
	return LogOutput{kind: outputStderr}
}

// File returns a destination naming the file at path. The path is stored
// verbatim; it is never opened.
func File(path string) LogOutput {
	return LogOutput{kind: outputFile, path: path}
}

// IsStdout reports whether o is the standard output destination.
func (o LogOutput) IsStdout() bool { return o.kind == outputStdout }

// IsStderr reports whether o is the standard error destination.
func (o LogOutput) IsStderr() bool { return o.kind == outputStderr }

// FilePath returns the file path and true when o is a file destination.
func (o LogOutput) FilePath() (string, bool) {
	if o.kind != outputFile {
		return "", false
	}
	return o.path, true
}

// String returns "stdout", "stderr" or "file:<path>".
func (o LogOutput) String() string {
	switch o.kind {
	case outputStderr:
		return "stderr"
	case outputFile:
		return filePrefix + o.path
	default:
		return "stdout"
	}
}

// ParseLogOutput parses the text form produced by String. Whitespace is
// ignored around the stdout and stderr keywords; a file path is kept as is.
func ParseLogOutput(s string) (LogOutput, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout", "":
		return Stdout(), nil
	case "stderr":
		return Stderr(), nil
	}

	if len(s) > len(filePrefix) && strings.EqualFold(s[:len(filePrefix)], filePrefix) {
		return File(s[len(filePrefix):]), nil
	}
	return LogOutput{}, fmt.Errorf("%w: %q (must be stdout, stderr or file:<path>)", ErrInvalidLogOutput, s)
}

// MarshalText implements the encoding.TextMarshaler interface. A file
// destination with an empty path cannot be marshaled.
func (o LogOutput) MarshalText() ([]byte, error) {
	if o.kind == outputFile && o.path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrInvalidLogOutput)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (o *LogOutput) UnmarshalText(text []byte) error {
	parsed, err := ParseLogOutput(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
