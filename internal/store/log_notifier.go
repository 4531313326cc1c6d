package store

import (
	"log"

	"github.com/ytget/list-manager/internal/model"
)

// LogNotifier is used when no notification surface is attached. Messages
// are written to the standard logger instead of being shown.
type LogNotifier struct{}

// Notify logs the message with its severity
func (LogNotifier) Notify(message string, severity model.Severity) {
	log.Printf("notification surface not attached, [%s] %s", severity, message)
}
