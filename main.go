package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/glasscart/storefront/api"
	"github.com/glasscart/storefront/auth"
	"github.com/glasscart/storefront/config"
	"github.com/glasscart/storefront/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	// The store is optional at startup: without DATABASE_URL the
	// server still serves, and every data endpoint reports the store
	// as unavailable.
	var st *store.Store
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set; running without a document store")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := store.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			slog.Error("document store unreachable; running without it", "error", err)
		} else {
			st = s
		}
	}

	tokens := auth.NewTokens(cfg.SecretKey, cfg.TokenTTL)
	r := api.SetupRouter(api.New(st, tokens, cfg))

	slog.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
