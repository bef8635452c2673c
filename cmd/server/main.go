package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skynet2/fio-ynab-importer/pkg/app"
	"github.com/skynet2/fio-ynab-importer/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := app.NewLogger(cfg)
	ctx := logger.WithContext(context.Background())

	if cfg.ApiKey == "" {
		logger.Fatal().Msg("API_KEY is required for the server")
	}

	application, err := app.New(ctx, cfg, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}

	handle := NewHandler(application.Processor, application.Reporter, cfg.ApiKey)

	listenAddr := cfg.ListenAddr
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      handle.Router(logger),
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", listenAddr).Msg("listening")

	panic(srv.ListenAndServe())
}
