// Command logistics checks the LogiMexico hourly order rate against the planned 12 orders/hour.
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

	if _, err := c.Execute(context.Background(), os.Stdout, []scenario.Scenario{scenario.Logistics()}); err != nil {
		log.Fatalf("logistics run failed: %v", err)
	}
}
