// Package config loads the integration's configuration from TOML and
// environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/khehtisham/magento2-textyess-integration/internal/domain/textyess"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	HTTP     HTTPConfig
	TextYess TextYessConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration for the event intake
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// TextYessConfig holds the TextYess integration settings
type TextYessConfig struct {
	Enabled        bool
	WebhookURLBase string
	HMACSecret     string
	UserID         string
	Debug          bool
}

// Settings converts the loaded configuration into the domain settings value
func (t *TextYessConfig) Settings() textyess.Settings {
	return textyess.Settings{
		Enabled:        t.Enabled,
		WebhookURLBase: t.WebhookURLBase,
		HMACSecret:     t.HMACSecret,
		UserID:         t.UserID,
		Debug:          t.Debug,
	}
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with TEXTYESS_ prefix (e.g. TEXTYESS_TEXTYESS_HMAC_SECRET)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("TEXTYESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		TextYess: TextYessConfig{
			Enabled:        v.GetBool("textyess.enabled"),
			WebhookURLBase: v.GetString("textyess.webhook_url_base"),
			HMACSecret:     v.GetString("textyess.hmac_secret"),
			UserID:         v.GetString("textyess.user_id"),
			Debug:          v.GetBool("textyess.debug"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "textyess-integration"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.TextYess.WebhookURLBase == "" {
		cfg.TextYess.WebhookURLBase = textyess.DefaultWebhookURLBase
	}
}

// NewProvider adapts the loaded configuration to the domain ConfigProvider
// port. The process-level config carries one settings value for every store
// scope; multi-store deployments supply their own provider.
func NewProvider(cfg *Config) textyess.ConfigProvider {
	return textyess.NewFixedConfig(cfg.TextYess.Settings())
}

// validate performs validation on the configuration. Enabling the
// integration is rejected unless the required TextYess fields are present
// and the base URL is syntactically valid.
func (c *Config) validate() error {
	if c.TextYess.Enabled {
		settings := c.TextYess.Settings()
		if err := settings.ValidateEnable(); err != nil {
			return err
		}
	}
	return nil
}
