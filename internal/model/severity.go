package model

// Severity represents the weight of a user-facing notification
type Severity string

const (
	// SeveritySuccess reports a completed mutation
	SeveritySuccess Severity = "success"

	// SeverityInfo reports a no-op that needs no attention
	SeverityInfo Severity = "info"

	// SeverityWarning reports input that could not be used as given
	SeverityWarning Severity = "warning"

	// SeverityDanger reports input that was rejected
	SeverityDanger Severity = "danger"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// IsValid returns true if s is one of the known severities
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityDanger:
		return true
	}
	return false
}
