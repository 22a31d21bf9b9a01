package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"beautygpt-api/app"
	"beautygpt-api/config"
	"beautygpt-api/logging"
)

// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker)
const listenAddr = "0.0.0.0:8000"

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	handler, err := app.Initialize(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("initialization failed")
	}

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", listenAddr).Msg("Server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
