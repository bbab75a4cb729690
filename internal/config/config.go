// Package config loads runtime configuration from an optional YAML file and
// DEPLOYBUTTON_* environment variables, and builds the matching logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	"github.com/goliatone/go-deploybutton/pkg/theme"
)

// EnvPrefix prefixes every environment override (DEPLOYBUTTON_SERVER_PORT).
const EnvPrefix = "DEPLOYBUTTON"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GeneratorConfig holds the deploy URL derivation settings.
type GeneratorConfig struct {
	Endpoint          string `mapstructure:"endpoint"`
	DefaultRepository string `mapstructure:"default_repository"`
	ButtonImage       string `mapstructure:"button_image"`
}

// ThemeConfig selects the page theme.
type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// Load reads configuration from path (optional) and the environment.
// A missing file falls back to defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("generator.endpoint", deployurl.DefaultEndpoint)
	v.SetDefault("generator.default_repository", deployurl.DefaultRepository)
	v.SetDefault("generator.button_image", deployurl.DefaultButtonImage)
	v.SetDefault("theme.name", theme.DefaultTheme)
	v.SetDefault("theme.variant", theme.DefaultVariant)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, fmt.Errorf("config: read %s: %w", path, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// ParseLevel maps a level name onto slog, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a logger writing to w with the configured level and
// format ("json" or "text").
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
