// Package config loads tabdemo settings from defaults, an optional config
// file, and TABDEMO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tabdemo/internal/clock"
)

// Config holds application configuration.
type Config struct {
	Clock   ClockConfig
	Profile ProfileConfig
	Log     LogConfig
}

// ClockConfig controls the clock card on the Home tab.
type ClockConfig struct {
	Interval time.Duration
	Layout   string
}

// ProfileConfig is the static content of the Profile tab.
type ProfileConfig struct {
	Name  string
	Bio   string
	About string
	Email string
	Phone string
}

// LogConfig controls debug logging. The terminal belongs to the UI, so logs
// only ever go to a file.
type LogConfig struct {
	Debug bool
	Path  string
}

var (
	ErrInvalidInterval = errors.New("clock.interval must be positive")
	ErrEmptyLayout     = errors.New("clock.layout must not be empty")
)

// Load reads configuration from file and env. Env var overrides use prefix TABDEMO_.
// path, when non-empty, names the config file explicitly; otherwise TABDEMO_CONFIG
// or ~/.config/tabdemo/config.toml is used if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("clock.interval", clock.DefaultInterval)
	v.SetDefault("clock.layout", clock.DefaultLayout)
	v.SetDefault("profile.name", "John Doe")
	v.SetDefault("profile.bio", "Terminal UI Developer")
	v.SetDefault("profile.about", "I love building terminal apps with Go and exploring new technologies.")
	v.SetDefault("profile.email", "john.doe@example.com")
	v.SetDefault("profile.phone", "(123) 456-7890")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.path", "tabdemo.log")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TABDEMO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabdemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABDEMO")
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

// Validate rejects settings the clock ticker cannot run with.
func (c Config) Validate() error {
	if c.Clock.Interval <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidInterval, c.Clock.Interval)
	}
	if strings.TrimSpace(c.Clock.Layout) == "" {
		return ErrEmptyLayout
	}
	return nil
}
