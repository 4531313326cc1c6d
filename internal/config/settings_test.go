package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestToastDuration(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if d := settings.GetToastDuration(); d != DefaultToastDuration {
		t.Errorf("Expected default toast duration %s, got %s", DefaultToastDuration, d)
	}

	// Test setting custom value
	settings.SetToastDuration(3 * time.Second)
	if d := settings.GetToastDuration(); d != 3*time.Second {
		t.Errorf("Expected toast duration 3s, got %s", d)
	}

	// Test boundary values
	settings.SetToastDuration(10 * time.Millisecond)
	if settings.GetToastDuration() != MinToastDuration {
		t.Errorf("Toast duration should be clamped to minimum %s", MinToastDuration)
	}

	settings.SetToastDuration(time.Minute)
	if settings.GetToastDuration() != MaxToastDuration {
		t.Errorf("Toast duration should be clamped to maximum %s", MaxToastDuration)
	}
}

func TestSystemNotifications(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetSystemNotifications() {
		t.Error("System notifications should be disabled by default")
	}

	settings.SetSystemNotifications(true)
	if !settings.GetSystemNotifications() {
		t.Error("Expected system notifications enabled")
	}

	settings.SetSystemNotifications(false)
	if settings.GetSystemNotifications() {
		t.Error("Expected system notifications disabled")
	}
}

func TestSeedFrom(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	cfg := Config{UI: UIConfig{ToastDuration: 4 * time.Second, SystemNotifications: true}}
	settings.SeedFrom(cfg)

	if d := settings.GetToastDuration(); d != 4*time.Second {
		t.Errorf("Expected seeded toast duration 4s, got %s", d)
	}
	if !settings.GetSystemNotifications() {
		t.Error("Expected seeded system notifications enabled")
	}

	// User changes are kept on the next start
	settings.SetToastDuration(2 * time.Second)
	settings.SetSystemNotifications(false)
	settings.SeedFrom(cfg)

	if d := settings.GetToastDuration(); d != 2*time.Second {
		t.Errorf("Expected user toast duration 2s to win, got %s", d)
	}
	if settings.GetSystemNotifications() {
		t.Error("Expected user choice to win over config")
	}
}
