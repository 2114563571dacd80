package main

import (
	"log"

	"alignr/internal/app"
	"alignr/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
