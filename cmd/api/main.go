package main

import (
	"os"

	"github.com/kerem/learnhub/internal/pkg/logger"
	"github.com/kerem/learnhub/internal/server"
)

// @title LearnHub API
// @version 1.0
// @description REST API for the LearnHub learning platform

// @contact.name API Support
// @contact.email support@learnhub.local

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
