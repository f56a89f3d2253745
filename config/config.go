package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Site     SiteConfig     `json:"site"`
	Admin    AdminConfig    `json:"admin"`
	Blog     BlogConfig     `json:"blog"`
	Logging  LoggingConfig  `json:"logging"`
	Backup   BackupConfig   `json:"backup"`
	Assets   AssetsConfig   `json:"assets"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
	SeedOnBoot        bool          `json:"seed_on_boot" env:"DB_SEED_ON_BOOT" default:"true"`
}

// SiteConfig holds compiled fallbacks for the site identity. The
// canonical values live in the settings table; these apply when the row
// is missing.
type SiteConfig struct {
	BaseURL     string `json:"base_url" env:"BASE_URL" default:"http://localhost:8080"`
	Name        string `json:"name" env:"SITE_NAME" default:"Grand River Analytics"`
	Description string `json:"description" env:"SITE_DESCRIPTION" default:"Independent equity research across financials, technology, and consumer sectors."`
}

type AdminConfig struct {
	PasswordHash      string        `json:"-" env:"ADMIN_PASSWORD_HASH"`
	Password          string        `json:"-" env:"ADMIN_PASSWORD"`
	SessionSecret     string        `json:"-" env:"SESSION_SECRET"`
	SessionSecretFile string        `json:"-" env:"SESSION_SECRET_FILE"`
	SessionTTL        time.Duration `json:"session_ttl" env:"ADMIN_SESSION_TTL" default:"24h"`
	LoginRatePerMin   int           `json:"login_rate_per_min" env:"ADMIN_LOGIN_RATE_PER_MIN" default:"10"`
	LoginBurst        int           `json:"login_burst" env:"ADMIN_LOGIN_BURST" default:"5"`
}

type BlogConfig struct {
	PageSize     int `json:"page_size" env:"BLOG_PAGE_SIZE" default:"10"`
	HomeLimit    int `json:"home_limit" env:"BLOG_HOME_LIMIT" default:"6"`
	FeedLimit    int `json:"feed_limit" env:"BLOG_FEED_LIMIT" default:"15"`
	RelatedLimit int `json:"related_limit" env:"BLOG_RELATED_LIMIT" default:"3"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"text"`
}

type BackupConfig struct {
	PostsCSVPath string `json:"posts_csv_path" env:"POSTS_BACKUP_CSV" default:"posts_backup.csv"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load session secret from file if configured (Docker Secrets support)
	if config.Admin.SessionSecretFile != "" {
		content, err := os.ReadFile(config.Admin.SessionSecretFile)
		if err == nil {
			config.Admin.SessionSecret = strings.TrimSpace(string(content))
		} else {
			// Fall back to the SESSION_SECRET env value; without the
			// warning an unreadable file would silently cost every
			// session on the next restart.
			slog.Warn("session secret file unreadable, falling back to SESSION_SECRET",
				"path", config.Admin.SessionSecretFile, "error", err)
		}
	}

	return config, nil
}
