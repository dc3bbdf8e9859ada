package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store := repository.Open(ctx, cfg.DatabaseDSN, cfg.HistoryFile)

	history := service.NewHistoryService(store, time.Now)
	loaded := history.Load(ctx)
	slog.Info("history loaded", "entries", len(loaded))

	authService, err := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		slog.Error("invalid admin password hash", "error", err)
		os.Exit(1)
	}
	if !authService.Enabled() {
		slog.Warn("ADMIN_PASSWORD_HASH not set; history routes answer 503")
	}

	r := handler.NewRouter(handler.RouterConfig{
		Generator: service.NewGeneratorService(crypto.NewGenerator(crypto.CryptoSource{}, nil), history),
		History:   history,
		Auth:      authService,
		JWTSecret: cfg.JWTSecret,
		RateLimit: middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if err := store.Close(); err != nil {
		slog.Warn("closing history store failed", "error", err)
	}
	if shutdownErr != nil {
		slog.Error("server forced shutdown", "error", shutdownErr)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
