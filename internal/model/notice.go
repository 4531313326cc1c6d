package model

import (
	"time"

	"github.com/google/uuid"
)

// Notice is one notification delivered to a user-facing surface
type Notice struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// NewNotice creates a notice with a fresh ID. Unknown severities fall
// back to SeverityInfo.
func NewNotice(message string, severity Severity) *Notice {
	if !severity.IsValid() {
		severity = SeverityInfo
	}
	return &Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
}

// Expired reports whether the notice is older than ttl at now
func (n *Notice) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.CreatedAt) >= ttl
}
