package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	swaggertodocs "github.com/GAKiknadze/swagger-to-docs"
	"github.com/GAKiknadze/swagger-to-docs/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
	Verbose    bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate an OpenAPI specification file or stdin against the version it declares.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  swaggerdocs validate openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs validate --no-warnings openapi.json\n")
		Writef(fs.Output(), "  cat openapi.yaml | swaggerdocs validate -q -\n")
		Writef(fs.Output(), "  swaggerdocs validate --format json openapi.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// validateOutput is the structured rendering of a validation result.
type validateOutput struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Version  string   `json:"version,omitempty" yaml:"version,omitempty"`
	Spec     string   `json:"spec" yaml:"spec"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	// Validate format flag early to fail fast before loading
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	doc, err := loadSpec(specPath, logger)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	v := validator.New()
	v.IncludeWarnings = !flags.NoWarnings
	v.Logger = logger
	result := v.ValidateDocument(doc)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		out := validateOutput{
			Valid:    result.Valid,
			Version:  result.Version,
			Spec:     FormatSpecPath(specPath),
			Errors:   issueLines(result.Errors),
			Warnings: issueLines(result.Warnings),
		}
		if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	// Text output goes to stderr so piped stdout stays clean.
	if !flags.Quiet {
		Writef(os.Stderr, "OpenAPI Specification Validator\n")
		Writef(os.Stderr, "================================\n\n")
		Writef(os.Stderr, "swaggerdocs version: %s\n", swaggertodocs.Version())
		Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
		Writef(os.Stderr, "OAS Version: %s\n\n", result.Version)

		if len(result.Errors) > 0 {
			Writef(os.Stderr, "Errors (%d):\n", len(result.Errors))
			for _, e := range result.Errors {
				Writef(os.Stderr, "  %s\n", e.String())
			}
			Writef(os.Stderr, "\n")
		}

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(result.Warnings))
			for _, w := range result.Warnings {
				Writef(os.Stderr, "  %s\n", w.String())
			}
			Writef(os.Stderr, "\n")
		}

		if result.Valid {
			Writef(os.Stderr, "✓ Validation passed")
			if len(result.Warnings) > 0 {
				Writef(os.Stderr, " with %d warning(s)", len(result.Warnings))
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✗ Validation failed: %d error(s)", len(result.Errors))
			if len(result.Warnings) > 0 {
				Writef(os.Stderr, ", %d warning(s)", len(result.Warnings))
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Exit with error if validation failed
	if !result.Valid {
		os.Exit(1)
	}

	return nil
}

// issueLines renders issues as "path: message" strings for structured
// output, without severity decoration.
func issueLines(list []validator.Issue) []string {
	if len(list) == 0 {
		return nil
	}
	lines := make([]string, 0, len(list))
	for _, i := range list {
		if i.Path != "" {
			lines = append(lines, i.Path+": "+i.Message)
			continue
		}
		lines = append(lines, i.Message)
	}
	return lines
}
