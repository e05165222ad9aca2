package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlenaMolokova/cardcheck/internal/config"
	"github.com/AlenaMolokova/cardcheck/internal/logger"
	"github.com/AlenaMolokova/cardcheck/internal/shell"
	"github.com/AlenaMolokova/cardcheck/internal/usecase"
	"github.com/AlenaMolokova/cardcheck/internal/validation"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewCLIConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout belongs to the dialogue
	if err := logger.Setup(os.Stderr, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cardUC := usecase.NewCardUseCase(validation.NewBrandClassifier())
	if err := shell.New(cardUC, os.Stdin, os.Stdout).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Shell stopped: %v", err)
		os.Exit(1)
	}
}
