package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"grandriver/config"
	"grandriver/di"
	"grandriver/driver/blog_db"
	"grandriver/rest"
	"grandriver/utils/logger"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	log := logger.InitLogger()
	log.Info("Starting server")

	if err := run(); err != nil {
		log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := blog_db.InitDBPool(ctx, cfg.Database.MaxConnections, cfg.Database.ConnectionTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	container, err := di.NewApplicationComponents(pool, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application components: %w", err)
	}

	if err := container.BlogDBRepository.EnsureSchema(ctx, cfg.Site.Name, cfg.Site.Description, cfg.Site.BaseURL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	if cfg.Database.SeedOnBoot {
		if err := container.BlogDBRepository.SeedPosts(ctx); err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
		container.BackupPostsUsecase.Execute(ctx)
	}

	e := echo.New()
	e.HideBanner = true
	if err := rest.RegisterRoutes(e, container, cfg); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Logger.Info("Listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
