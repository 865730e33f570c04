package validator

import (
	"fmt"

	"github.com/GAKiknadze/swagger-to-docs/parser"
	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	document *parser.Document

	includeWarnings bool
	logger          parser.Logger
}

// ValidateWithOptions validates an OpenAPI document using functional
// options. This combines input source selection and configuration in a
// single call.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("openapi.yaml"),
//	    validator.WithIncludeWarnings(false),
//	)
func ValidateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		Logger:          cfg.logger,
	}

	// Already loaded documents are the preferred path: no second parse.
	if cfg.document != nil {
		return v.ValidateDocument(cfg.document), nil
	}
	return v.Validate(*cfg.filePath)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.filePath == nil && cfg.document == nil {
		return nil, &specerrors.ConfigError{
			Option:  "input source",
			Message: "must specify an input source (use WithFilePath or WithDocument)",
		}
	}
	if cfg.filePath != nil && cfg.document != nil {
		return nil, &specerrors.ConfigError{
			Option:  "input source",
			Message: "must specify exactly one input source",
		}
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already loaded document as the input source
func WithDocument(doc *parser.Document) Option {
	return func(cfg *validateConfig) error {
		if doc == nil {
			return fmt.Errorf("validator: document cannot be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithIncludeWarnings enables or disables best practice warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during validation.
// By default, no logging is performed (nil logger).
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
