package main

import (
	"stress-checker/internal/config"
	"stress-checker/internal/database"
	logger "stress-checker/internal/logging"
	"stress-checker/internal/models"
	"stress-checker/internal/router"
	"stress-checker/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".", logger.DefaultRotation)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the instrument questions at startup
	instrument, err := models.LoadInstrument(config.Conf.Server.QuestionsFile)
	if err != nil {
		log.Fatal("Failed to load instrument", zap.Error(err))
	}

	// Start the daily reminder scheduler
	emailService := services.NewEmailService(log)
	services.NewScheduler(log, emailService).Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, instrument)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
