// Command skinova runs the Skinova API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/skinovaai/skinova/internal/config"
	"github.com/skinovaai/skinova/internal/handlers"
	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/internal/token"
	"github.com/skinovaai/skinova/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skinova:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry("skinova", logger.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	}, middleware.RequestIDExtractor())

	st, err := store.New()
	if err != nil {
		return err
	}
	tokens, err := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	h := handlers.New(st, tokens, log)

	log.Info("configuration loaded",
		slog.String("addr", cfg.Addr),
		slog.String("environment", cfg.Environment),
	)

	return httpx.Serve(context.Background(), httpx.ServerConfig{
		Handler: h.Router(cfg.CORSOrigins),
		Logger:  log,
		Address: cfg.Addr,
	})
}
