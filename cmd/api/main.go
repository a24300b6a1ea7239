package main

import (
	"github.com/rs/zerolog/log"

	"github.com/dkellis099/Model-Screener/internal/pkg/config"
	"github.com/dkellis099/Model-Screener/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := server.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}
