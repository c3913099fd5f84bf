// Package config loads site configuration from flags, environment variables,
// an optional config.yaml and a .env file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the site reads.
const EnvPrefix = "PORTFOLIO"

// Config is the resolved site configuration.
type Config struct {
	Port      int    `mapstructure:"port"`
	DBPath    string `mapstructure:"db_path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	GinMode   string `mapstructure:"gin_mode"`
	Tracking  bool   `mapstructure:"tracking"`

	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`

	SMTPHost     string        `mapstructure:"smtp_host"`
	SMTPPort     string        `mapstructure:"smtp_port"`
	SMTPUser     string        `mapstructure:"smtp_user"`
	SMTPPass     string        `mapstructure:"smtp_pass"`
	ToEmail      string        `mapstructure:"to_email"`
	ContactDelay time.Duration `mapstructure:"contact_delay"`
}

// legacyEnv are unprefixed variables that older deployments already set.
var legacyEnv = map[string]string{
	"port":           "PORT",
	"gin_mode":       "GIN_MODE",
	"admin_username": "ADMIN_USERNAME",
	"admin_password": "ADMIN_PASSWORD",
	"smtp_host":      "SMTP_HOST",
	"smtp_port":      "SMTP_PORT",
	"smtp_user":      "SMTP_USER",
	"smtp_pass":      "SMTP_PASS",
	"to_email":       "TO_EMAIL",
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "portfolio.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "fmt")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("tracking", true)
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", "587")
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_pass", "")
	v.SetDefault("to_email", "")
	v.SetDefault("contact_delay", 1500*time.Millisecond)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key), legacy)
	}
}

// Load reads the optional config file and resolves a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("config error: port %d out of range", c.Port)
	}
	switch c.LogFormat {
	case "fmt", "text", "json":
	default:
		return errors.Errorf("config error: unknown log_format %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("config error: unknown gin_mode %q", c.GinMode)
	}
	if c.ContactDelay < 0 {
		return errors.New("config error: contact_delay must be non-negative")
	}
	if c.Tracking && c.DBPath == "" {
		return errors.New("config error: db_path is required when tracking is enabled")
	}
	return nil
}

// SMTPConfigured reports whether mail can actually be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}
