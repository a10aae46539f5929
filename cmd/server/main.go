package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/mrsobakin/battleships/internal/game/placement"
)

func NewServer(conf config, logger zerolog.Logger) *server {
	return &server{
		placer: placement.Placer{
			MaxAttempts: conf.MaxAttempts,
		},
		placementTimeout: conf.PlacementTimeout,
		jobs:             semaphore.NewWeighted(conf.MaxJobs),
		log:              logger,
	}
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	conf, err := loadConfig(os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	router := gin.Default()

	s := NewServer(conf, logger)

	s.RegisterEndpoints(router)

	logger.Info().
		Str("addr", conf.Addr).
		Int("max_attempts", conf.MaxAttempts).
		Dur("placement_timeout", conf.PlacementTimeout).
		Int64("max_jobs", conf.MaxJobs).
		Msg("starting rules server")

	if err := router.Run(conf.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
