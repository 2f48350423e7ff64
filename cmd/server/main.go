// Command server runs the task API: a CRUD HTTP service backed by
// PostgreSQL with a Redis read-through cache on the listing endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskhive/task-api/internal/config"
	"github.com/taskhive/task-api/internal/platform/logger"
	"github.com/taskhive/task-api/internal/platform/postgres"
	"github.com/taskhive/task-api/internal/platform/rediscache"
	"github.com/taskhive/task-api/internal/service"
)

// application holds the wired dependencies shared by the router and server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	taskService service.TaskService
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, db); err != nil {
		return err
	}
	appLogger.Info("database migrations applied")

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("failed to close redis client", "error", err)
		}
	}()

	listingCache := rediscache.New(
		redisClient,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		appLogger,
	)

	// A dead cache backend only degrades listing performance, so an
	// unreachable Redis is not fatal at startup.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := listingCache.Ping(pingCtx); err != nil {
		appLogger.Warn("redis unavailable at startup, listing cache degraded",
			"addr", cfg.Cache.RedisAddr,
			"error", err)
	}

	taskStore := postgres.NewPostgresTaskStore(db, appLogger)

	taskService, err := service.NewTaskService(taskStore, listingCache, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create task service: %w", err)
	}

	app := &application{
		config:      cfg,
		logger:      appLogger,
		taskService: taskService,
	}

	return app.serve(app.setupRouter())
}
