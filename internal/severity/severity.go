// Package severity provides severity level constants for issues reported
// by the validator and batch packages.
//
// The severity levels are ordered from most to least severe:
// Error > Warning > Info
package severity

// Severity indicates the severity level of a reported issue.
type Severity int

const (
	// SeverityError indicates a structural violation that makes the
	// document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or
	// recommendation that does not prevent processing.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing
	// choices. These are non-actionable notices that may be useful for
	// debugging.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
