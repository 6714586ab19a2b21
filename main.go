// @title SAFE-MIT Training API
// @version 1.0
// @description Training backend for the SAFE-MIT platform: module catalog, lesson progression, quiz scoring and certificates.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"safemit_training_backend/internal/app"
	"safemit_training_backend/internal/config"
	"safemit_training_backend/pkg/configwatcher"
	"safemit_training_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	watch := flag.Bool("watch-config", false, "reload configuration when the file changes")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), application.ApplyConfig)
	}

	application.Run()
}
