// Package main is the entry point for the Cash Flow Tracker API server.
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
	"github.com/redis/go-redis/v9"

	"github.com/cashflow-tracker/backend/config"
	"github.com/cashflow-tracker/backend/internal/infra/db"
	"github.com/cashflow-tracker/backend/internal/infra/dependency"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Cash Flow Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis connection for change notifications
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)

	// Start the change notification hub
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	if err := injector.Hub.Run(hubCtx); err != nil {
		slog.Error("Failed to start change notification hub", "error", err)
		os.Exit(1)
	}
	defer injector.Hub.Close()

	// Seed default accounts on first boot
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := injector.EnsureDefaultAccounts.Execute(seedCtx); err != nil {
		slog.Error("Failed to seed default accounts", "error", err)
		seedCancel()
		os.Exit(1)
	}
	seedCancel()

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server. WriteTimeout stays zero so event streams are not
	// cut off mid-connection; ReadTimeout still bounds request parsing.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     engine,
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
