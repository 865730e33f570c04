package parser

import (
	"fmt"
	"io"

	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format SourceFormat
	logger Logger
}

// LoadWithOptions loads an OpenAPI document using functional options.
// This combines input source selection and configuration in a single
// call.
//
// Example:
//
//	doc, err := parser.LoadWithOptions(
//	    parser.WithBytes(data),
//	    parser.WithFormat(parser.SourceFormatYAML),
//	)
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	l := &Loader{Logger: cfg.logger}
	switch {
	case cfg.filePath != nil:
		return l.Load(*cfg.filePath)
	case cfg.reader != nil:
		return l.LoadReader(cfg.reader, cfg.format)
	case cfg.bytes != nil:
		return l.LoadBytes(cfg.bytes, cfg.format)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("parser: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	for _, set := range []bool{cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, &specerrors.ConfigError{
			Option:  "input source",
			Message: "must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		}
	case sources > 1:
		return nil, &specerrors.ConfigError{
			Option:  "input source",
			Message: "must specify exactly one input source",
		}
	}

	if cfg.filePath != nil && cfg.format != "" {
		return nil, &specerrors.ConfigError{
			Option:  "WithFormat",
			Message: "format is chosen by file extension when loading from a path",
		}
	}
	if cfg.filePath == nil && cfg.format == "" {
		return nil, &specerrors.ConfigError{
			Option:  "WithFormat",
			Message: "bytes and reader input require an explicit format",
		}
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source. The format is
// chosen by the path's extension.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source. Reader input
// requires WithFormat.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source. Bytes input
// requires WithFormat.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithFormat sets the source format for bytes and reader input
func WithFormat(format SourceFormat) Option {
	return func(cfg *loadConfig) error {
		switch format {
		case SourceFormatJSON, SourceFormatYAML:
			cfg.format = format
			return nil
		default:
			return fmt.Errorf("parser: format must be %q or %q", SourceFormatJSON, SourceFormatYAML)
		}
	}
}

// WithLogger sets a structured logger for debug output during loading.
// By default, no logging is performed (nil logger).
//
// Use SlogAdapter to wrap a *slog.Logger.
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}
