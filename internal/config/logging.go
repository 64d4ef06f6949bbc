// Package config holds the logging configuration record. Values are stored
// and returned verbatim; nothing in this repository consults them to decide
// how to log.
package config

// Logging contains logging configuration options.
type Logging struct {
	enabled     bool
	level       LogLevel
	destination LogOutput
}

// NewLogging returns the default configuration: disabled, info level,
// writing to standard output.
func NewLogging() *Logging {
	return &Logging{
		enabled:     false,
		level:       LogLevelInfo,
		destination: Stdout(),
	}
}

// Enabled reports whether logging is switched on.
func (l *Logging) Enabled() bool {
	return l.enabled
}

// SetEnabled switches logging on or off.
func (l *Logging) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Level returns the configured level.
func (l *Logging) Level() LogLevel {
	return l.level
}

// SetLevel stores level without validating it.
func (l *Logging) SetLevel(level LogLevel) {
	l.level = level
}

// Destination returns the configured destination.
func (l *Logging) Destination() LogOutput {
	return l.destination
}

// SetDestination stores the destination.
func (l *Logging) SetDestination(destination LogOutput) {
	l.destination = destination
}
