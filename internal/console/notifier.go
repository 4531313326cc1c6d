package console

import (
	"io"

	"github.com/fatih/color"

	"github.com/ytget/list-manager/internal/model"
)

var severityAttributes = map[model.Severity][]color.Attribute{
	model.SeveritySuccess: {color.FgGreen},
	model.SeverityInfo:    {color.FgCyan},
	model.SeverityWarning: {color.FgYellow},
	model.SeverityDanger:  {color.FgRed, color.Bold},
}

// ColorNotifier writes each notice as "[severity] message"
type ColorNotifier struct {
	out     io.Writer
	colored bool
}

// NewColorNotifier creates a notifier writing to out. With colored false
// the output is plain text.
func NewColorNotifier(out io.Writer, colored bool) *ColorNotifier {
	return &ColorNotifier{out: out, colored: colored}
}

// Notify implements store.Notifier
func (n *ColorNotifier) Notify(message string, severity model.Severity) {
	c := newColor(n.colored, severityAttributes[severity]...)
	_, _ = c.Fprintf(n.out, "[%s] %s\n", severity, message)
}

// newColor ignores the global color.NoColor so that each writer decides
// for itself whether escape codes are emitted.
func newColor(colored bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
