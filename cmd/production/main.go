// Command production checks the defect proportion per turn against the historical 3%.
package main

import (
	"context"
	"log"
	"os"

	"bizstats/domain/scenario"
	"bizstats/internal/config"
	"bizstats/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if _, err := c.Execute(context.Background(), os.Stdout, []scenario.Scenario{scenario.Production()}); err != nil {
		log.Fatalf("production run failed: %v", err)
	}
}
