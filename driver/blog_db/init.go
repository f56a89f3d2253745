package blog_db

import (
	"context"
	"fmt"
	"os"
	"time"

	"grandriver/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBPool connects to Postgres using the DB_* environment variables.
// A .env file is honored when present so local runs match the container
// environment.
func InitDBPool(ctx context.Context, maxConns int, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug("No .env file loaded", "error", err)
	}

	poolConfig, err := pgxpool.ParseConfig(buildConnectionString(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolConfig.MaxConns = int32(maxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", getEnvOrDefault("DB_NAME", "grandriver"))

	return pool, nil
}

func buildConnectionString(connectTimeout time.Duration) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_PORT", "5432"),
		getEnvOrDefault("DB_USER", "grandriver"),
		getEnvOrDefault("DB_PASSWORD", "grandriver"),
		getEnvOrDefault("DB_NAME", "grandriver"),
		getEnvOrDefault("DB_SSL_MODE", "disable"),
		int(connectTimeout.Seconds()),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
