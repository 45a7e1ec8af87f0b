package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"film-catalog/cmd"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/data/repository/memory"
	"film-catalog/internal/wire"
	"film-catalog/pkg/database"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.App.Storage),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repos *repository.Repository
	switch config.App.Storage {
	case utils.StoragePostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		if config.Database.Migrate {
			if err := database.Migrate(ctx, db); err != nil {
				logger.Fatal("Failed to migrate database", zap.Error(err))
			}
			logger.Info("Database schema applied")
		}

		repos = repository.NewRepository(db, logger)
	default:
		repos = memory.NewRepository(logger)
	}

	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}
