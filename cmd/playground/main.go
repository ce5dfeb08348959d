package main

import (
	"log"

	"github.com/joho/godotenv"

	"manydice/internal"
	"manydice/internal/config"
	"manydice/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	app, err := ui.NewApp(cfg.Server, logger)
	if err != nil {
		log.Fatalf("Failed to initialize playground: %v", err)
	}

	if err := app.Serve(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
