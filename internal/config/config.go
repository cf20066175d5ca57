// Package config loads game settings from YAML, .env files and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/world"
)

// Config holds every setting the game reads at startup.
type Config struct {
	// Seed for world generation. 0 derives one from the wall clock.
	Seed int64 `yaml:"seed"`

	// Debug builds every level as a standard dungeon.
	Debug bool `yaml:"debug"`

	Map       MapConfig       `yaml:"map"`
	FOV       FOVConfig       `yaml:"fov"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   logger.Config   `yaml:"logging"`

	// Language selects the message catalogue, e.g. "en" or "es".
	Language string `yaml:"language"`
}

// MapConfig holds level dimensions.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FOVConfig holds the player's view settings.
type FOVConfig struct {
	Radius     int    `yaml:"radius"`
	LightWalls bool   `yaml:"light_walls"`
	Algorithm  string `yaml:"algorithm"`
}

// TelemetryConfig toggles trace export.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
		},
		FOV: FOVConfig{
			Radius:     entity.DefaultFOVRadius,
			LightWalls: true,
			Algorithm:  world.FOVBasic.String(),
		},
		Logging:  logger.DefaultConfig(),
		Language: "en",
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadEnv loads variables from .env files into the process environment.
// Variables already set are left alone. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

func (c *Config) applyEnv() {
	if seed := os.Getenv("ROGUEWARTS_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Seed = n
		} else {
			logger.Warning("ignoring ROGUEWARTS_SEED", "value", seed, "error", err)
		}
	}
	if debug := os.Getenv("ROGUEWARTS_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Debug = b
		}
	}
	if lang := os.Getenv("ROGUEWARTS_LANG"); lang != "" {
		c.Language = lang
	}
	if enabled := os.Getenv("ROGUEWARTS_TELEMETRY"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.Telemetry.Enabled = b
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		c.Logging.FilePath = path
	}
}

// Validate checks the values that can not be corrected silently.
func (c *Config) Validate() error {
	if c.Map.Width < 0 || c.Map.Height < 0 {
		return fmt.Errorf("%w: map size %dx%d", world.ErrInvalidGenerationParams, c.Map.Width, c.Map.Height)
	}
	if c.FOV.Radius < 1 {
		return fmt.Errorf("fov radius %d must be positive", c.FOV.Radius)
	}
	if _, err := world.ParseFOVAlgorithm(c.FOV.Algorithm); err != nil {
		return err
	}
	return nil
}

// FOVAlgorithm returns the configured algorithm, falling back to the basic
// ray caster for unknown names.
func (c *Config) FOVAlgorithm() world.FOVAlgorithm {
	algo, _ := world.ParseFOVAlgorithm(c.FOV.Algorithm)
	return algo
}
