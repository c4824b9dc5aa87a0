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

// main runs the logistics, production and delivery scenarios in order
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

	reports, err := c.Execute(context.Background(), os.Stdout, scenario.All())
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	for _, r := range reports {
		c.Logger.Info("%s run %s fingerprint %s", r.Scenario.Key, r.RunID, r.Fingerprint.Fingerprint.Short())
	}
}
