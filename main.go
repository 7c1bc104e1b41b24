package main

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/charis-foundation/board-backend/config"
	"github.com/charis-foundation/board-backend/internal/api"
	"github.com/charis-foundation/board-backend/recordstore"
)

func main() {
	zlog := recordstore.InitLogger()
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("Failed to load configuration", zap.Error(err))
	}

	store := recordstore.NewClient(recordstore.Config{
		BaseURL: cfg.StoreURL,
		BaseID:  cfg.StoreBaseID,
		APIKey:  cfg.StoreAPIKey,
	}, zlog)

	// Probe the record store before accepting traffic. Transient upstream
	// failures at boot are retried with exponential backoff; a hard failure
	// after the deadline aborts startup.
	probe := backoff.NewExponentialBackOff()
	probe.MaxElapsedTime = 2 * time.Minute
	err = backoff.RetryNotify(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.Ping(ctx, cfg.Tables.Grants)
	}, probe, func(err error, wait time.Duration) {
		zlog.Warn("Record store not reachable, retrying",
			zap.Duration("retry_in", wait),
			zap.Error(err))
	})
	if err != nil {
		zlog.Fatal("Record store unreachable", zap.Error(err))
	}
	zlog.Info("Connected to record store", zap.String("url", cfg.StoreURL))

	app := api.NewFiberApp(cfg, store, zlog)

	zlog.Info("Starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
