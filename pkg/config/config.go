package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// Dataset is the path of a YAML dataset; empty means the built-in sample.
	Dataset string    `mapstructure:"dataset"`
	Aria    AriaConfig `mapstructure:"aria"`
	Log     LogConfig  `mapstructure:"log"`
	UI      UIConfig   `mapstructure:"ui"`
}

// AriaConfig holds accessible names passed down to components.
type AriaConfig struct {
	Table string `mapstructure:"table"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width     int  `mapstructure:"width"`
	Height    int  `mapstructure:"height"`
	AltScreen bool `mapstructure:"alt_screen"`
	Mouse     bool `mapstructure:"mouse"`
}

// New returns a viper instance with defaults, search paths and env bindings.
// Env var overrides use the prefix DOWNLOADS_, e.g. DOWNLOADS_LOG_LEVEL.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("dataset", "")
	v.SetDefault("aria.table", "Download list")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.width", 0)
	v.SetDefault("ui.height", 0)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)

	v.SetConfigName(".downloads") // .yaml is implicit
	if override := os.Getenv("DOWNLOADS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("DOWNLOADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (explicit path, or the search paths when empty)
// into a Config. A missing config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	for _, p := range []*string{&c.Dataset, &c.Log.File} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return Config{}, fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return c, nil
}
