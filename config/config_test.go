package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.SeedOnBoot)
	assert.Equal(t, "http://localhost:8080", cfg.Site.BaseURL)
	assert.Equal(t, "Grand River Analytics", cfg.Site.Name)
	assert.Equal(t, 10, cfg.Blog.PageSize)
	assert.Equal(t, 6, cfg.Blog.HomeLimit)
	assert.Equal(t, 15, cfg.Blog.FeedLimit)
	assert.Equal(t, 3, cfg.Blog.RelatedLimit)
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "posts_backup.csv", cfg.Backup.PostsCSVPath)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("BASE_URL", "https://research.example.com")
	t.Setenv("BLOG_PAGE_SIZE", "25")
	t.Setenv("ADMIN_SESSION_TTL", "2h")
	t.Setenv("DB_SEED_ON_BOOT", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "https://research.example.com", cfg.Site.BaseURL)
	assert.Equal(t, 25, cfg.Blog.PageSize)
	assert.Equal(t, 2*time.Hour, cfg.Admin.SessionTTL)
	assert.False(t, cfg.Database.SeedOnBoot)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNewConfig_TrailingSlashTrimmedFromBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "https://research.example.com/")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://research.example.com", cfg.Site.BaseURL)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "SERVER_PORT", "not-a-number"},
		{"port out of range", "SERVER_PORT", "70000"},
		{"invalid duration", "SERVER_READ_TIMEOUT", "soon"},
		{"invalid bool", "DB_SEED_ON_BOOT", "maybe"},
		{"relative base url", "BASE_URL", "research.example.com"},
		{"zero page size", "BLOG_PAGE_SIZE", "0"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_SessionSecretFromFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "session_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("file-secret\n"), 0o600))

	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_SECRET_FILE", secretFile)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.Admin.SessionSecret)
}

func TestNewConfig_SessionSecretFileMissingFallsBack(t *testing.T) {
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_SECRET_FILE", filepath.Join(t.TempDir(), "absent"))

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Admin.SessionSecret)
	assert.Contains(t, buf.String(), "session secret file unreadable")
}
