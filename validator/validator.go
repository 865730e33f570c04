package validator

import (
	"fmt"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/internal/issues"
	"github.com/GAKiknadze/swagger-to-docs/internal/severity"
	"github.com/GAKiknadze/swagger-to-docs/parser"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a structural violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// Issue represents a single validation finding
type Issue = issues.Issue

// httpMethods are the operation keys inspected inside each path item.
var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// Result contains the outcome of validating one document.
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Version is the detected specification version string
	Version string
	// SourcePath is the document's input path
	SourcePath string
	// Errors contains all structural errors, in check order
	Errors []Issue
	// Warnings contains all best-practice warnings
	Warnings []Issue
}

// Messages returns the error messages in check order, without paths or
// severity decoration.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Validator handles OpenAPI document structure validation
type Validator struct {
	// IncludeWarnings determines whether to include best practice warnings
	IncludeWarnings bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (v *Validator) log() parser.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return parser.NopLogger{}
}

// Validate loads the document at path and validates it. The returned
// error covers load failures only; structural problems are reported in
// the Result.
func (v *Validator) Validate(path string) (*Result, error) {
	doc, err := parser.Load(path)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to load document: %w", err)
	}
	return v.ValidateDocument(doc), nil
}

// ValidateDocument checks the structure of an already loaded document.
// It is read-only, never fails, and runs every check: all problems
// accumulate rather than short-circuiting on the first.
func (v *Validator) ValidateDocument(doc *parser.Document) *Result {
	result := &Result{
		Version:    doc.Version(),
		SourcePath: doc.SourcePath(),
	}

	root := doc.Root()
	v.checkVersionField(root, result)
	v.checkInfo(root, result)
	v.checkPaths(root, result)
	if v.IncludeWarnings {
		v.checkBestPractices(root, result)
	}

	result.Valid = len(result.Errors) == 0
	v.log().Debug("validated document",
		"path", result.SourcePath,
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))
	return result
}

// checkVersionField reports a document that declares neither an openapi
// nor a swagger field. Key presence is all that counts here; a version
// with a wrong value is still a declared version.
func (v *Validator) checkVersionField(root *parser.Node, result *Result) {
	if _, ok := root.Get("openapi"); ok {
		return
	}
	if _, ok := root.Get("swagger"); ok {
		return
	}
	v.addError(result, "", "Missing 'openapi' or 'swagger' field")
}

// checkInfo reports a missing or malformed info object. Title and
// version are only checked when info actually is an object.
func (v *Validator) checkInfo(root *parser.Node, result *Result) {
	info, ok := root.Get("info")
	if !ok {
		v.addError(result, "info", "Missing 'info' object")
		return
	}
	if info.Kind() != parser.KindObject {
		v.addError(result, "info", "'info' must be an object")
		return
	}
	if _, ok := info.Get("title"); !ok {
		v.addError(result, "info.title", "Missing 'info.title'", withField("title"))
	}
	if _, ok := info.Get("version"); !ok {
		v.addError(result, "info.version", "Missing 'info.version'", withField("version"))
	}
}

// checkPaths reports a missing paths object. An empty paths object is
// fine: presence is the requirement.
func (v *Validator) checkPaths(root *parser.Node, result *Result) {
	if _, ok := root.Get("paths"); !ok {
		v.addError(result, "paths", "Missing 'paths' object")
	}
}

// checkBestPractices adds non-fatal recommendations.
func (v *Validator) checkBestPractices(root *parser.Node, result *Result) {
	if info := root.Member("info"); info.Kind() == parser.KindObject {
		if _, ok := info.Get("description"); !ok {
			v.addWarning(result, "info.description", "Missing 'info.description'", withField("description"))
		}
	}

	paths := root.Member("paths")
	for _, path := range paths.Keys() {
		if !strings.HasPrefix(path, "/") {
			v.addWarning(result, "paths."+path, "Path does not start with '/'")
		}
		item := paths.Member(path)
		if item.Kind() != parser.KindObject {
			continue
		}
		for _, method := range httpMethods {
			op := item.Member(method)
			if op.Kind() != parser.KindObject {
				continue
			}
			if _, ok := op.Get("summary"); !ok {
				v.addWarning(result, fmt.Sprintf("paths.%s.%s", path, method), "Operation has no summary")
			}
		}
	}
}

// addError appends a validation error.
func (v *Validator) addError(result *Result, path, message string, opts ...func(*Issue)) {
	issue := Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Errors = append(result.Errors, issue)
}

// addWarning appends a validation warning.
func (v *Validator) addWarning(result *Result, path, message string, opts ...func(*Issue)) {
	issue := Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Warnings = append(result.Warnings, issue)
}

// withField sets the Field on an Issue.
func withField(field string) func(*Issue) {
	return func(i *Issue) { i.Field = field }
}
