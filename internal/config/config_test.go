package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate keeps tests away from a real user config file.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvPrefix+"_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.UI.Frontend != DefaultFrontend {
		t.Errorf("Expected frontend %s, got %s", DefaultFrontend, cfg.UI.Frontend)
	}
	if cfg.UI.ToastDuration != DefaultToastDuration {
		t.Errorf("Expected toast duration %s, got %s", DefaultToastDuration, cfg.UI.ToastDuration)
	}
	if cfg.UI.SystemNotifications {
		t.Error("System notifications should be off by default")
	}
	if cfg.UI.WindowWidth != DefaultWindowWidth || cfg.UI.WindowHeight != DefaultWindowHeight {
		t.Errorf("Expected window %dx%d, got %.0fx%.0f",
			DefaultWindowWidth, DefaultWindowHeight, cfg.UI.WindowWidth, cfg.UI.WindowHeight)
	}
	if len(cfg.List.Seed) != 0 {
		t.Errorf("Expected no seed items, got %v", cfg.List.Seed)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
frontend = "tui"
toast_duration = "3s"
system_notifications = true

[list]
seed = ["Milk", "Bread"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.UI.Frontend != FrontendTUI {
		t.Errorf("Expected frontend %s, got %s", FrontendTUI, cfg.UI.Frontend)
	}
	if cfg.UI.ToastDuration != 3*time.Second {
		t.Errorf("Expected toast duration 3s, got %s", cfg.UI.ToastDuration)
	}
	if !cfg.UI.SystemNotifications {
		t.Error("Expected system notifications enabled")
	}
	if !reflect.DeepEqual(cfg.List.Seed, []string{"Milk", "Bread"}) {
		t.Errorf("Expected seed [Milk Bread], got %v", cfg.List.Seed)
	}
}

func TestLoadDefaultDirectory(t *testing.T) {
	isolate(t)

	dir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	cfgDir := filepath.Join(dir, "list-manager")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[ui]\nfrontend = \"console\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.UI.Frontend != FrontendConsole {
		t.Errorf("Expected frontend %s, got %s", FrontendConsole, cfg.UI.Frontend)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("LIST_MANAGER_UI_FRONTEND", "tui")
	t.Setenv("LIST_MANAGER_UI_TOAST_DURATION", "2s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.UI.Frontend != FrontendTUI {
		t.Errorf("Expected frontend %s from env, got %s", FrontendTUI, cfg.UI.Frontend)
	}
	if cfg.UI.ToastDuration != 2*time.Second {
		t.Errorf("Expected toast duration 2s from env, got %s", cfg.UI.ToastDuration)
	}
}

func TestLoadRejectsUnknownFrontend(t *testing.T) {
	isolate(t)
	t.Setenv("LIST_MANAGER_UI_FRONTEND", "web")

	_, err := Load("")
	if err == nil {
		t.Fatal("Expected error for unknown frontend")
	}
	if !strings.Contains(err.Error(), "ui.frontend") {
		t.Errorf("Expected error to name ui.frontend, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{UI: UIConfig{
		Frontend:      FrontendGUI,
		ToastDuration: time.Second,
		WindowWidth:   100,
		WindowHeight:  100,
	}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	noToast := valid
	noToast.UI.ToastDuration = 0
	if err := noToast.Validate(); err == nil {
		t.Error("Expected error for zero toast duration")
	}

	noWidth := valid
	noWidth.UI.WindowWidth = 0
	if err := noWidth.Validate(); err == nil {
		t.Error("Expected error for zero window width")
	}
}
