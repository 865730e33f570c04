// Package issues provides the issue type shared by validation and batch
// reporting.
package issues

import (
	"fmt"

	"github.com/GAKiknadze/swagger-to-docs/internal/severity"
)

// Issue represents a single problem found in a document.
type Issue struct {
	// Path is the dotted path to the problematic field (e.g. "info.title"
	// or "paths./pets.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name the issue is about (optional)
	Field string
}

// String returns a formatted representation of the issue. The symbol
// depends on severity: "✗" for errors, "⚠" for warnings, "ℹ" for info.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Path == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}
