// @title           Sonic Blog
// @version         1.0
// @description     Server-rendered blog with cookie sessions and owner-only post editing.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey CookieAuth
// @in              header
// @name            session
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/thefueley/sonic-poc/docs"
	"github.com/thefueley/sonic-poc/internal/app"
	"github.com/thefueley/sonic-poc/internal/config"
	"github.com/thefueley/sonic-poc/internal/logger"
)

func main() {
	// A missing .env is fine; the real environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("config", "error", err.Error())
	}
	log := logger.New(cfg.App.LogLevel)
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("config loaded, connecting to DB and Redis...", "env", cfg.App.Env, "version", cfg.App.Version)

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("app init", "error", err.Error())
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serveErr:
		log.Error("HTTP server error", "error", err.Error())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown", "error", err.Error())
	}
	if err := application.Close(); err != nil {
		log.Error("app close", "error", err.Error())
		os.Exit(1)
	}
}
