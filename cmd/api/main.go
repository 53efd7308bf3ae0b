package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/deptboard/board-service/internal/bootstrap"
	"github.com/deptboard/board-service/internal/logger"
)

func main() {
	// .env is for local dev; absence is fine
	_ = godotenv.Load()

	logger.Init()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := bootstrap.Run(context.Background(), sigCh); err != nil {
		logger.Logger.Fatal().Err(err).Msg("server exited")
	}
}
