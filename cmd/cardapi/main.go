package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/cardcheck/internal/config"
	"github.com/AlenaMolokova/cardcheck/internal/logger"
	"github.com/AlenaMolokova/cardcheck/internal/router"
	"github.com/AlenaMolokova/cardcheck/internal/usecase"
	"github.com/AlenaMolokova/cardcheck/internal/validation"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.NewConfig(config.Default())
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if err := logger.Setup(os.Stdout, cfg.LogLevel); err != nil {
		return err
	}

	cardUC := usecase.NewCardUseCase(validation.NewBrandClassifier())

	srv := &http.Server{
		Addr:           cfg.RunAddr,
		Handler:        router.SetupRoutes(cardUC),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting card validation server on %s", cfg.RunAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-quit:
	}

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	log.Info("Server exited")
	return nil
}
