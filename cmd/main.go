package main

import (
	"github.com/dajor/bewirtungsbeleg-sub002/internal/app"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
)

func main() {
	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize logger
	logger.InitLogger(cfg)

	// Create and start the application server
	server := app.NewAppServer(cfg)
	server.Serve()
}
