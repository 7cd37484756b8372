// main.go
package main

import (
	"context"
	"log"
	"time"

	"secure-portal/cmd"
	"secure-portal/internal/data/repository"
	"secure-portal/internal/wire"
	"secure-portal/pkg/database"
	"secure-portal/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config (fails fast on a missing or short JWT secret)
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire dependencies", zap.Error(err))
	}

	// Provision the employee reviewer account if configured
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Service.Auth.EnsureSeedEmployee(seedCtx); err != nil {
		logger.Error("Failed to seed employee account", zap.Error(err))
	}
	cancel()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
