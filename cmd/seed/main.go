package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/deptboard/board-service/internal/config"
	"github.com/deptboard/board-service/internal/infrastructure/db/postgres"
	"github.com/deptboard/board-service/internal/infrastructure/security"
	"github.com/deptboard/board-service/internal/logger"
)

// seed creates the schema plus demo accounts and board content.
func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("load config")
	}

	db, err := config.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("connect db")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("ensure schema")
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	if err := postgres.Seed(ctx, db, hasher, cfg.Department); err != nil {
		logger.Logger.Fatal().Err(err).Msg("seed")
	}

	logger.Logger.Info().Msg("seed complete")
}
