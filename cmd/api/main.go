package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "applicant-tracker/docs" // Swagger docs
	"applicant-tracker/internal/api"
	"applicant-tracker/internal/app"
	"applicant-tracker/internal/config"
	"applicant-tracker/internal/logger"

	"go.uber.org/zap"
)

// @title Applicant Tracker API
// @version 1.0
// @description Job postings, resume screening and hiring reports

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %s", err)
	}

	logger, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("starting application", zap.Error(err))
	}
	defer application.Close()

	apiSrv := api.NewAPI(application.Service, cfg.Upload.MaxBytes, logger)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // multipart uploads
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("API server listening", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("serving", zap.Error(err))
	}

	<-idleConnsClosed
}
