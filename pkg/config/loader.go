package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// engineYAMLFile is the single configuration file the engine reads from its
// config directory.
const engineYAMLFile = "engine.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load engine.yaml from configDir (absent file means defaults only)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"db_host", cfg.Database.Host,
		"redis_url", cfg.Redis.URL,
		"workers", cfg.Scheduler.WorkerCount,
		"max_iterations", cfg.Scheduler.MaxIterations)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(configDir, engineYAMLFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No engine.yaml found, using built-in defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, NewLoadError(engineYAMLFile, err)
	}

	user := &Config{}
	if err := yaml.Unmarshal(ExpandEnv(data), user); err != nil {
		return nil, NewLoadError(engineYAMLFile, fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}

	// User values win over defaults; zero-valued user fields fall through.
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, NewLoadError(engineYAMLFile, err)
	}
	return cfg, nil
}
