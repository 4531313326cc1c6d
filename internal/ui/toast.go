package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/list-manager/internal/config"
	"github.com/ytget/list-manager/internal/model"
)

// toast is one visible notice and its auto-hide timer
type toast struct {
	notice *model.Notice
	view   fyne.CanvasObject
	timer  *time.Timer
}

// ToastPanel shows notices as a stack of colored labels that hide
// themselves. It is the store's Notifier for the desktop frontend.
type ToastPanel struct {
	app      fyne.App
	settings *config.Settings
	box      *fyne.Container

	mu       sync.Mutex
	toasts   []*toast
	duration time.Duration
}

// NewToastPanel creates a panel with its own container. settings may be
// nil, in which case DefaultToastTTL is used and system notifications are
// off.
func NewToastPanel(app fyne.App, settings *config.Settings) *ToastPanel {
	return NewToastPanelOn(container.NewVBox(), app, settings)
}

// NewToastPanelOn shows notices inside box
func NewToastPanelOn(box *fyne.Container, app fyne.App, settings *config.Settings) *ToastPanel {
	return &ToastPanel{
		app:      app,
		settings: settings,
		box:      box,
	}
}

// Container returns the container holding the toasts
func (p *ToastPanel) Container() *fyne.Container {
	return p.box
}

// SetDuration overrides the display time from settings
func (p *ToastPanel) SetDuration(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.duration = d
}

// Notify shows message with the color of severity
func (p *ToastPanel) Notify(message string, severity model.Severity) {
	if p.box == nil {
		log.Printf("ToastPanel: toast container not found, dropping [%s] %s", severity, message)
		return
	}

	notice := model.NewNotice(message, severity)

	label := widget.NewLabel(severityIcon(notice.Severity) + " " + notice.Message)
	label.Importance = severityImportance(notice.Severity)
	label.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(IconClose, func() {
		p.Dismiss(notice.ID)
	})
	closeBtn.Importance = widget.LowImportance

	t := &toast{
		notice: notice,
		view:   container.NewBorder(nil, nil, nil, closeBtn, label),
	}

	p.mu.Lock()
	p.toasts = append(p.toasts, t)
	var dropped []*toast
	for len(p.toasts) > MaxVisibleToasts {
		dropped = append(dropped, p.toasts[0])
		p.toasts = p.toasts[1:]
	}
	t.timer = time.AfterFunc(p.ttl(), func() {
		fyne.Do(func() { p.Dismiss(notice.ID) })
	})
	p.mu.Unlock()

	for _, old := range dropped {
		old.timer.Stop()
		p.box.Remove(old.view)
	}
	p.box.Add(t.view)

	p.sendSystemNotification(notice)
}

// Dismiss hides the notice with id. It reports whether it was visible.
func (p *ToastPanel) Dismiss(id string) bool {
	p.mu.Lock()
	var found *toast
	for i, t := range p.toasts {
		if t.notice.ID == id {
			found = t
			p.toasts = append(p.toasts[:i], p.toasts[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	if found == nil {
		return false
	}
	if found.timer != nil {
		found.timer.Stop()
	}
	p.box.Remove(found.view)
	return true
}

// Visible returns the notices currently shown, oldest first
func (p *ToastPanel) Visible() []*model.Notice {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*model.Notice, 0, len(p.toasts))
	for _, t := range p.toasts {
		out = append(out, t.notice)
	}
	return out
}

// ttl must be called with mu held
func (p *ToastPanel) ttl() time.Duration {
	if p.duration > 0 {
		return p.duration
	}
	if p.settings != nil {
		return p.settings.GetToastDuration()
	}
	return DefaultToastTTL
}

// sendSystemNotification mirrors outcomes worth noticing outside the window
func (p *ToastPanel) sendSystemNotification(notice *model.Notice) {
	if p.app == nil || p.settings == nil || !p.settings.GetSystemNotifications() {
		return
	}
	if notice.Severity != model.SeveritySuccess && notice.Severity != model.SeverityDanger {
		return
	}
	p.app.SendNotification(fyne.NewNotification(AppTitle, notice.Message))
}

func severityImportance(s model.Severity) widget.Importance {
	switch s {
	case model.SeveritySuccess:
		return widget.SuccessImportance
	case model.SeverityWarning:
		return widget.WarningImportance
	case model.SeverityDanger:
		return widget.DangerImportance
	default:
		return widget.HighImportance
	}
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeveritySuccess:
		return IconSuccess
	case model.SeverityWarning:
		return IconWarning
	case model.SeverityDanger:
		return IconDanger
	default:
		return IconInfo
	}
}
