// Command puzzletrack-server starts the puzzle catalog and session tracker HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolkovs/puzzletrack/internal/config"
	"github.com/avolkovs/puzzletrack/internal/migrate"
	"github.com/avolkovs/puzzletrack/internal/repository/postgres"
	"github.com/avolkovs/puzzletrack/internal/server/httpapi"
	"github.com/avolkovs/puzzletrack/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations (including the system template
// seed), and serves the HTTP API until interrupted.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	db := &postgres.DB{Pool: pool}
	templateRepo := postgres.NewTemplateRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	attemptRepo := postgres.NewAttemptRepo(db)

	// Services
	templateSvc := service.NewTemplateService(templateRepo)
	sessionSvc := service.NewSessionService(sessionRepo, attemptRepo, templateRepo)

	// HTTP API
	auth := httpapi.NewAuthenticator([]byte(cfg.JWTKey))
	handlers := httpapi.NewHandlers(templateSvc, sessionSvc, logger)
	router := httpapi.NewRouter(handlers, auth, logger, pool.Ping)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
