package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/eprinting/printshop-backend/internal/config"
	"github.com/eprinting/printshop-backend/internal/db"
	"github.com/eprinting/printshop-backend/internal/server"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()
	clients, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("firebase connect failed")
	}
	defer clients.Close()

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage client failed")
	}
	defer storageClient.Close()

	srv := server.New(clients, storageClient, cfg)
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		errCh <- srv.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("server stopped")
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		srv.Shutdown()
	}
}
