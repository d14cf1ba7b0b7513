package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/config"
	"github.com/hongminglow/yapekuna/internal/logging"
	"github.com/hongminglow/yapekuna/internal/server"
	"github.com/hongminglow/yapekuna/internal/storage/memory"
)

func main() {
	// Backends exchange plain JSON numbers for amounts.
	decimal.MarshalJSONWithoutQuotes = true
	logger := loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger = logging.New(os.Stdout, cfg.LogLevel).With().Str("service", "mockserver").Logger()

	store, err := memory.New(memory.DefaultSeed())
	if err != nil {
		logger.Fatal().Err(err).Msg("seed store")
	}

	srv := server.New(cfg, store, logger)

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddress()).Msg("yapekuna mock backend listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func loadLocalEnv() zerolog.Logger {
	logger := logging.New(os.Stdout, "info")
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found; relying on existing environment")
	}
	return logger
}
