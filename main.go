// main.go
package main

import (
	"log"

	"movie-booking/cmd"
	"movie-booking/internal/wire"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
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
		zap.String("api_base_url", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	// Wire all dependencies
	app := wire.Wiring(config, logger)

	if err := cmd.Run(app); err != nil {
		logger.Fatal("Booking flow failed", zap.Error(err))
	}
}
