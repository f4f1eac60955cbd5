package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/notehub/notehub/internal/api"
	"github.com/notehub/notehub/internal/auth"
	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/database"
	"github.com/notehub/notehub/internal/note"
	"github.com/notehub/notehub/internal/oauth"
)

func main() {
	// A missing .env is fine; environment variables take over.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var googleVerifier oauth.Verifier
	if cfg.GoogleAuthEnabled() {
		gv, err := oauth.NewGoogleVerifier(ctx, cfg.GoogleOAuthClientID)
		if err != nil {
			slog.Error("failed to initialize google verifier", "error", err)
			os.Exit(1)
		}
		googleVerifier = gv
		slog.Info("google sign-in enabled")
	} else {
		slog.Info("google sign-in disabled; no client id configured")
	}

	userRepo := auth.NewRepository(db.Pool())
	noteRepo := note.NewRepository(db.Pool())
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec([]byte(cfg.AuthSecret))
	authService := auth.NewService(userRepo, hasher, codec, googleVerifier)

	router := api.NewRouter(api.RouterDeps{
		AuthService: authService,
		NoteRepo:    noteRepo,
		DBPinger:    db,
		Version:     cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting notehub server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
