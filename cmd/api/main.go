package main

import (
	"context"
	"os"

	"github.com/yigit/madrasah/internal/pkg/logger"
	"github.com/yigit/madrasah/internal/server"
)

// @title Madrasah API
// @version 1.0
// @description JSON API for the madrasah website: news, academic calendar, alumni, registrations and contact messages

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name madrasah.sid
// @description Session cookie set by /auth/login

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
