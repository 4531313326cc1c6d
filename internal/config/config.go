package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Frontend names accepted by ui.frontend
const (
	FrontendGUI     = "gui"
	FrontendTUI     = "tui"
	FrontendConsole = "console"
)

// Default values
const (
	DefaultFrontend      = FrontendGUI
	DefaultToastDuration = 1500 * time.Millisecond
	DefaultWindowWidth   = 500
	DefaultWindowHeight  = 600
)

// EnvPrefix prefixes every environment override, e.g. LIST_MANAGER_UI_FRONTEND
const EnvPrefix = "LIST_MANAGER"

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	List ListConfig `mapstructure:"list"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Frontend            string        `mapstructure:"frontend"`
	ToastDuration       time.Duration `mapstructure:"toast_duration"`
	SystemNotifications bool          `mapstructure:"system_notifications"`
	WindowWidth         float32       `mapstructure:"window_width"`
	WindowHeight        float32       `mapstructure:"window_height"`
}

// ListConfig holds the items added at start-up.
type ListConfig struct {
	Seed []string `mapstructure:"seed"`
}

// Load reads configuration from file and env. The file is path when set,
// otherwise $LIST_MANAGER_CONFIG, otherwise config.* in the user config
// directory; only the last one may be absent.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.frontend", DefaultFrontend)
	v.SetDefault("ui.toast_duration", DefaultToastDuration)
	v.SetDefault("ui.system_notifications", false)
	v.SetDefault("ui.window_width", DefaultWindowWidth)
	v.SetDefault("ui.window_height", DefaultWindowHeight)
	v.SetDefault("list.seed", []string{})

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}

	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "list-manager"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that viper cannot constrain.
func (c Config) Validate() error {
	switch c.UI.Frontend {
	case FrontendGUI, FrontendTUI, FrontendConsole:
	default:
		return fmt.Errorf("invalid ui.frontend %q: want %s, %s or %s",
			c.UI.Frontend, FrontendGUI, FrontendTUI, FrontendConsole)
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("invalid ui.toast_duration %s: must be positive", c.UI.ToastDuration)
	}
	if c.UI.WindowWidth <= 0 || c.UI.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.UI.WindowWidth, c.UI.WindowHeight)
	}
	return nil
}
