package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyToastDuration       = "toast_duration_ms"
	KeySystemNotifications = "system_notifications"
)

// Bounds for the toast duration preference
const (
	MinToastDuration = 500 * time.Millisecond
	MaxToastDuration = 10 * time.Second
)

// Settings manages user preferences of the desktop frontend
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SeedFrom stores values from cfg for every preference that is still unset.
// Preferences changed by the user win over the config file afterwards.
func (s *Settings) SeedFrom(cfg Config) {
	if s.app.Preferences().Int(KeyToastDuration) <= 0 {
		s.SetToastDuration(cfg.UI.ToastDuration)
	}
	if s.app.Preferences().String(KeySystemNotifications) == "" {
		s.SetSystemNotifications(cfg.UI.SystemNotifications)
	}
}

// GetToastDuration returns how long a notification stays visible
func (s *Settings) GetToastDuration() time.Duration {
	ms := s.app.Preferences().Int(KeyToastDuration)
	if ms <= 0 {
		s.SetToastDuration(DefaultToastDuration)
		return DefaultToastDuration
	}
	return time.Duration(ms) * time.Millisecond
}

// SetToastDuration sets how long a notification stays visible
func (s *Settings) SetToastDuration(d time.Duration) {
	if d < MinToastDuration {
		d = MinToastDuration
	}
	if d > MaxToastDuration {
		d = MaxToastDuration
	}
	s.app.Preferences().SetInt(KeyToastDuration, int(d/time.Millisecond))
}

// GetSystemNotifications returns whether notices are mirrored to the OS
func (s *Settings) GetSystemNotifications() bool {
	return s.app.Preferences().String(KeySystemNotifications) == "true"
}

// SetSystemNotifications sets whether notices are mirrored to the OS
func (s *Settings) SetSystemNotifications(enabled bool) {
	value := "false"
	if enabled {
		value = "true"
	}
	s.app.Preferences().SetString(KeySystemNotifications, value)
}
