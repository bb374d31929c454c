package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/syemed/intake/internal/config"
	"github.com/syemed/intake/internal/infra"
	"github.com/syemed/intake/internal/mail"
)

const defaultShutdownTimeout = 10 * time.Second
const defaultConnectTimeout = 10 * time.Second

// @title       Syemed Intake API
// @version     1.0
// @description Service request intake for medical equipment technical service.

// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization
func main() {
	logger := logrus.New()

	// local runs keep their settings in .env, deployments inject real env
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on process environment")
	}

	cfg, err := config.Build()
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer pgPool.Close()

	mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Errorf("failed to close redis connection - %v", err)
		}
	}()

	objectStore, err := infra.ObjectStorage(ctx, cfg.S3Cfg)
	if err != nil {
		logger.Fatal(err)
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPCfg.Server, cfg.SMTPCfg.Port, cfg.SMTPCfg.Email, cfg.SMTPCfg.Password)

	app, err := infra.Router(pgPool, mongoClient, redisClient, objectStore, mailer, cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	start(app, cfg.ServerCfg, logger)
}

func start(app *echo.Echo, cfg config.ServerCfg, logger *logrus.Logger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
