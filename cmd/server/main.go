package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/database"
	"github.com/houseofcompanies/leadmail/internal/email"
	"github.com/houseofcompanies/leadmail/internal/handler"
	"github.com/houseofcompanies/leadmail/internal/logger"
	"github.com/houseofcompanies/leadmail/internal/metrics"
	"github.com/houseofcompanies/leadmail/internal/middleware"
	"github.com/houseofcompanies/leadmail/internal/router"
	"github.com/houseofcompanies/leadmail/internal/service"
)

const version = "1.0.0"

func main() {
	// A missing .env is fine, real environment variables still apply
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", version).Msg("starting leadmail server")

	if !cfg.SMTP.Configured() {
		log.Warn().Msg("SMTP credentials are not set, lead submissions will fail")
	}

	// Connect to Redis only when it backs the rate limiter
	var rdb *database.Redis
	if cfg.RateLimiting.Enabled {
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().
			Int("limit", cfg.RateLimiting.Limit).
			Dur("window", cfg.RateLimiting.Window).
			Msg("connected to Redis, rate limiting enabled")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Initialize sender and services
	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Address:    cfg.SMTP.Address,
		Password:   cfg.SMTP.Password,
		SenderName: cfg.SMTP.SenderName,
	}, log)
	leadSvc := service.NewLeadService(sender, cfg, m, log)

	// Initialize handlers and middleware
	h := handler.New(rdb, log, cfg, leadSvc)
	mw := middleware.New(rdb, log, cfg, m)

	// Set up router
	r := router.New(h, mw, cfg, m)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// In-flight SMTP sessions get the full timeout to finish
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
