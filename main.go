// main.go
package main

import (
	"context"
	"log"
	"time"

	"taxi-dispatch/cmd"
	"taxi-dispatch/internal/data/repository"
	"taxi-dispatch/internal/wire"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/cache"
	"taxi-dispatch/pkg/database"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Backend.URL),
		zap.Bool("debug", config.App.Debug),
	)

	// Submission log store: Postgres when configured, memory otherwise
	var db database.PgxIface
	if config.Database.Enabled() {
		pool, err := database.Connect(context.Background(), config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		db = pool

		schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = repository.EnsureSubmissionSchema(schemaCtx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to prepare database schema", zap.Error(err))
		}

		logger.Info("Database connected successfully")
	}

	repos := repository.NewRepository(db, logger)

	// Fleet snapshot cache
	var fleetCache cache.Cache = cache.Noop{}
	if config.Redis.Enabled() {
		redisCache, closeRedis, err := cache.NewRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, fleet cache disabled", zap.Error(err))
		} else {
			defer closeRedis()
			fleetCache = redisCache
			logger.Info("Redis connected", zap.Duration("fleet_ttl", config.Redis.FleetTTL))
		}
	}

	api := backend.NewClient(config.Backend, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, api, fleetCache, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
