// Package main is the entry point for Roguewarts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/roguewarts/internal/config"
	"github.com/samdwyer/roguewarts/internal/game"
	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run starts the game and returns the process exit code. Deferred cleanup
// runs before main exits.
func run() int {
	configPath := flag.String("config", "roguewarts.yaml", "Path to the YAML config file")
	seed := flag.Int64("seed", 0, "World seed (0 keeps the configured seed)")
	debug := flag.Bool("debug", false, "Build every level as a standard dungeon")
	flag.Parse()

	// .env is optional: the variables may be set directly.
	if err := config.LoadEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.Debug = true
	}
	if cfg.Debug {
		cfg.Logging.Level = "DEBUG"
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	defer logger.Close()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		logger.Warning("telemetry setup failed, running without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("game init failed", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROGUEWARTS_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_ROGUEWARTS_DATASET")
	if dataset == "" {
		dataset = "roguewarts"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
