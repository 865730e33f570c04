package parser

import "log/slog"

// Logger is a minimal structured logging interface. Implementations must be
// safe for concurrent use. Attributes are alternating key/value pairs in the
// style of log/slog.
//
// The zero behavior throughout this module is no logging: every component
// defaults to NopLogger until one is supplied.
type Logger interface {
	// Debug logs at debug level with optional key/value attributes
	Debug(msg string, args ...any)
	// Info logs at info level with optional key/value attributes
	Info(msg string, args ...any)
	// Warn logs at warn level with optional key/value attributes
	Warn(msg string, args ...any)
	// Error logs at error level with optional key/value attributes
	Error(msg string, args ...any)
	// With returns a Logger that includes the given attributes in all
	// subsequent log records
	With(args ...any) Logger
}

// NopLogger discards all log records. It is the default Logger.
type NopLogger struct{}

// Debug implements Logger
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger
func (NopLogger) Info(string, ...any) {}

// Warn implements Logger
func (NopLogger) Warn(string, ...any) {}

// Error implements Logger
func (NopLogger) Error(string, ...any) {}

// With implements Logger
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter adapts a *slog.Logger to the Logger interface:
//
//	loader := parser.New()
//	loader.Logger = parser.SlogAdapter{L: slog.Default()}
type SlogAdapter struct {
	L *slog.Logger
}

// Debug implements Logger
func (s SlogAdapter) Debug(msg string, args ...any) { s.L.Debug(msg, args...) }

// Info implements Logger
func (s SlogAdapter) Info(msg string, args ...any) { s.L.Info(msg, args...) }

// Warn implements Logger
func (s SlogAdapter) Warn(msg string, args ...any) { s.L.Warn(msg, args...) }

// Error implements Logger
func (s SlogAdapter) Error(msg string, args ...any) { s.L.Error(msg, args...) }

// With implements Logger
func (s SlogAdapter) With(args ...any) Logger { return SlogAdapter{L: s.L.With(args...)} }
