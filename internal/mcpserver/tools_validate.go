package mcpserver

import (
	"context"

	"github.com/GAKiknadze/swagger-to-docs/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateSpecInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OpenAPI document to validate"`
	IncludeWarnings *bool     `json:"include_warnings,omitempty" jsonschema:"Include best-practice warnings (default from SWAGGERDOCS_INCLUDE_WARNINGS)"`
	Offset          int       `json:"offset,omitempty"           jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit           int       `json:"limit,omitempty"            jsonschema:"Maximum number of errors/warnings to return (default 50). Applied independently to errors and warnings arrays."`
}

type specIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type validateSpecOutput struct {
	Valid        bool        `json:"valid"`
	Version      string      `json:"version"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Returned     int         `json:"returned"`
	Errors       []specIssue `json:"errors,omitempty"`
	Warnings     []specIssue `json:"warnings,omitempty"`
}

func handleValidateSpec(_ context.Context, _ *mcp.CallToolRequest, input validateSpecInput) (*mcp.CallToolResult, validateSpecOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	includeWarnings := cfg.IncludeWarnings
	if input.IncludeWarnings != nil {
		includeWarnings = *input.IncludeWarnings
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateSpecOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithDocument(doc),
		validator.WithIncludeWarnings(includeWarnings),
	)
	if err != nil {
		return errResult(err), validateSpecOutput{}, nil
	}

	output := validateSpecOutput{
		Valid:        result.Valid,
		Version:      result.Version,
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
	}

	output.Errors = makeSlice[specIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, specIssue{
			Path:    e.Path,
			Message: e.Message,
			Field:   e.Field,
		})
	}
	output.Warnings = makeSlice[specIssue](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, specIssue{
			Path:    w.Path,
			Message: w.Message,
			Field:   w.Field,
		})
	}

	// Paginate errors and warnings.
	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}
