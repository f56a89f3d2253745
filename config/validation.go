package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config validation failed: %w", err)
	}

	if err := validateAdminConfig(&config.Admin); err != nil {
		return fmt.Errorf("admin config validation failed: %w", err)
	}

	if err := validateBlogConfig(&config.Blog); err != nil {
		return fmt.Errorf("blog config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateSiteConfig(config *SiteConfig) error {
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base URL must be an absolute URL, got %q", config.BaseURL)
	}

	if strings.HasSuffix(config.BaseURL, "/") {
		config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}

	if config.Name == "" {
		return fmt.Errorf("site name must not be empty")
	}

	return nil
}

func validateAdminConfig(config *AdminConfig) error {
	if config.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %v", config.SessionTTL)
	}

	if config.LoginRatePerMin < 1 {
		return fmt.Errorf("login rate must be at least 1 per minute, got %d", config.LoginRatePerMin)
	}

	if config.LoginBurst < 1 {
		return fmt.Errorf("login burst must be at least 1, got %d", config.LoginBurst)
	}

	return nil
}

func validateBlogConfig(config *BlogConfig) error {
	if config.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", config.PageSize)
	}

	if config.HomeLimit < 1 {
		return fmt.Errorf("home limit must be at least 1, got %d", config.HomeLimit)
	}

	if config.FeedLimit < 1 {
		return fmt.Errorf("feed limit must be at least 1, got %d", config.FeedLimit)
	}

	if config.RelatedLimit < 0 {
		return fmt.Errorf("related limit must not be negative, got %d", config.RelatedLimit)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(config.Level)] {
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", config.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(config.Format)] {
		return fmt.Errorf("log format must be text or json, got %q", config.Format)
	}

	return nil
}
