package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"agora/internal/config"
	"agora/internal/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger.Init(cfg.Env)

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
