package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string
	Lang      string
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level string
	Path  string
}

// Load reads configuration from file and env. Env var overrides use prefix ENTRIES_.
// An explicit path (or ENTRIES_CONFIG) must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.lang", "en")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", defaultLogPath())

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ENTRIES_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "entries"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ENTRIES")
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
	return c, nil
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "entries", "entries.log")
}
