package main

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/api"
	"github.com/hongminglow/yapekuna/internal/auth"
	"github.com/hongminglow/yapekuna/internal/cli"
	"github.com/hongminglow/yapekuna/internal/config"
	"github.com/hongminglow/yapekuna/internal/logging"
	"github.com/hongminglow/yapekuna/internal/server"
	"github.com/hongminglow/yapekuna/internal/session"
	"github.com/hongminglow/yapekuna/internal/storage/memory"
)

func main() {
	// Backends exchange plain JSON numbers for amounts.
	decimal.MarshalJSONWithoutQuotes = true
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireSessionSecret()
	}
	if err != nil {
		bootLogger := logging.NewConsole(os.Stderr, "info")
		bootLogger.Error().Err(err).Msg("load config")
		os.Exit(1)
	}
	logger := logging.NewConsole(os.Stderr, cfg.LogLevel)

	opts := []api.Option{api.WithLogger(logger.With().Str("component", "api").Logger())}
	if cfg.UseMocks {
		transport, err := mockTransport(cfg, logger)
		if err != nil {
			logger.Error().Err(err).Msg("start mock backend")
			os.Exit(1)
		}
		opts = append(opts, api.WithTransport(transport))
		logger.Info().Msg("using in-process mock backend")
	}
	client := api.New(api.Config{
		AuthURL:       cfg.AuthServiceURL,
		HistoryURL:    cfg.HistoryServiceURL,
		MovementsURL:  cfg.MovementsServiceURL,
		PromotionsURL: cfg.PromotionsServiceURL,
		Timeout:       cfg.RequestTimeout,
	}, opts...)

	sessions := session.NewAuthenticator(client, sessionStore(cfg, logger), logger)

	ui := cli.NewUI(client, sessions, cfg.TransferMax, bufio.NewReader(os.Stdin), os.Stdout, logger)
	if err := ui.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("stopped")
		os.Exit(1)
	}
}

// sessionStore keeps the session on disk against real services. The mock
// backend is reseeded on every start, so its sessions live only as long as the process.
func sessionStore(cfg config.Config, logger zerolog.Logger) session.Store {
	if cfg.UseMocks {
		return session.NewMemoryStore()
	}
	tokens := auth.NewTokenManager(cfg.SessionSecret, "yapekuna", cfg.SessionTTL)
	return session.NewFileStore(cfg.SessionFile, tokens, logger)
}

// mockTransport serves every backend service in process from seeded fixtures.
func mockTransport(cfg config.Config, logger zerolog.Logger) (http.RoundTripper, error) {
	fixtures, err := memory.New(memory.DefaultSeed())
	if err != nil {
		return nil, err
	}
	h := server.Routes(fixtures, logger.With().Str("component", "mock").Logger().Level(zerolog.WarnLevel), server.Options{
		InitBalance: cfg.InitBalance,
		CORSOrigins: cfg.CORSOrigins,
	})
	return api.HandlerTransport(h), nil
}
