package specerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrParse indicates malformed JSON or YAML input.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat indicates an input path without a recognized
	// .json, .yaml or .yml extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrReference indicates any reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrBrokenRef indicates a reference whose target does not exist.
	ErrBrokenRef = errors.New("broken reference")

	// ErrRefCycle indicates a reference chain that revisits a pointer
	// already being resolved.
	ErrRefCycle = errors.New("reference cycle")

	// ErrWrite indicates an export write failure.
	ErrWrite = errors.New("write error")

	// ErrConfig indicates invalid options or conflicting inputs.
	ErrConfig = errors.New("configuration error")
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	// Path is the file path that was requested
	Path string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return "file not found"
	}
	return "file not found: " + e.Path
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError reports malformed JSON or YAML input, carrying the source
// location when the underlying decoder provides one.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the source format ("json" or "yaml"), if known
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = "invalid " + e.Format
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// RefError reports a failed local pointer resolution. Cycle distinguishes
// a chain that revisits an in-progress pointer from a pointer whose target
// simply does not exist.
type RefError struct {
	// Pointer is the reference string that failed to resolve
	Pointer string
	// Segment is the pointer segment that could not be descended into
	// (empty for cycles)
	Segment string
	// Stack is the chain of in-progress pointers when a cycle was hit
	Stack []string
	// Cycle is true when the failure is a reference cycle
	Cycle bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *RefError) Error() string {
	if e.Cycle {
		msg := "reference cycle"
		if len(e.Stack) > 0 {
			msg += ": " + strings.Join(e.Stack, " -> ")
			if e.Pointer != "" {
				msg += " -> " + e.Pointer
			}
		} else if e.Pointer != "" {
			msg += ": " + e.Pointer
		}
		return msg
	}
	msg := "broken reference"
	if e.Pointer != "" {
		msg += ": " + e.Pointer
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (missing segment: %s)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type. All RefErrors match
// ErrReference; ErrBrokenRef and ErrRefCycle match according to Cycle.
func (e *RefError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrRefCycle && e.Cycle {
		return true
	}
	if target == ErrBrokenRef && !e.Cycle {
		return true
	}
	return false
}

// WriteError reports a failure to write an export file.
type WriteError struct {
	// Path is the output path that could not be written
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// ConfigError reports an invalid option or input combination.
type ConfigError struct {
	// Option is the name of the problematic option, if one applies
	Option string
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
