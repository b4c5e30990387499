package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "careerhub/docs" // Swagger docs
	"careerhub/internal/api"
	"careerhub/internal/config"
	"careerhub/internal/logger"
)

// @title CareerHub API
// @version 1.0
// @description Career development API: CV review, skills assessment, job matching and personal statements

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	apiSrv, err := api.NewAPI(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("api setup failed", zap.Error(err))
	}
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 3 * time.Minute,  // completion API round trip
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
			log.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	log.Info("API server listening", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}

	<-idleConnsClosed
}
