// Package config loads devconsole configuration with the usual precedence:
// built-in defaults, then an optional config file, then a local .env file,
// then DEVCONSOLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"devconsole/internal/logger"
)

// Config holds every tunable of a console session and its window.
type Config struct {
	// HistorySize bounds the number of submitted lines kept for history
	// navigation.
	HistorySize int `mapstructure:"history_size"`

	// Window geometry of the console, in pixels.
	LeftPos float64 `mapstructure:"left_pos"`
	TopPos  float64 `mapstructure:"top_pos"`
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`

	// Logging.
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// TestMode selects deterministic output.
	TestMode bool `mapstructure:"test_mode"`
}

// setDefaults installs the built-in defaults on a viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("history_size", 20)
	v.SetDefault("left_pos", 200.0)
	v.SetDefault("top_pos", 100.0)
	v.SetDefault("width", 800.0)
	v.SetDefault("height", 400.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("test_mode", false)
}

// Load reads configuration. cfgFile may name an explicit config file; when
// empty, a devconsole.yaml in the working directory or under
// ~/.config/devconsole is used if present. A missing config file is not an
// error; a malformed one is.
func Load(cfgFile string) (*Config, error) {
	// A local .env supplies environment variables without exporting them.
	// Its absence is the common case.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("devconsole")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/devconsole")
	}

	v.SetEnvPrefix("DEVCONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logger.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.HistorySize <= 0 {
		return nil, fmt.Errorf("history_size must be positive, got %d", cfg.HistorySize)
	}
	return &cfg, nil
}
