package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(t.TempDir())
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactDelay)
	assert.True(t, cfg.Tracking)
	assert.False(t, cfg.SMTPConfigured())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_FORMAT", "json")
	t.Setenv("PORTFOLIO_CONTACT_DELAY", "2s")
	t.Setenv("PORTFOLIO_TRACKING", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.ContactDelay)
	assert.False(t, cfg.Tracking)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.SMTPConfigured())
}

func TestPrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "7000")
	t.Setenv("PORT", "9090")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: 3000\nadmin_username: owner\n"), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "owner", cfg.AdminUsername)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [\n"), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8080, LogFormat: "fmt", GinMode: "release", DBPath: "x.db", Tracking: true}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"port", func(c *Config) { c.Port = 0 }, "port 0 out of range"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "unknown log_format"},
		{"gin mode", func(c *Config) { c.GinMode = "prod" }, "unknown gin_mode"},
		{"delay", func(c *Config) { c.ContactDelay = -time.Second }, "contact_delay"},
		{"db path", func(c *Config) { c.DBPath = "" }, "db_path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
