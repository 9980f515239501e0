package config

import "time"

// DefaultConfig returns the built-in defaults. User-supplied engine.yaml
// values are merged over these, so every field here must hold a value the
// engine can actually run with.
func DefaultConfig() *Config {
	return &Config{
		Database: &DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "pythmata",
			Database:        "pythmata",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: 1 * time.Hour,
			ConnMaxIdleTime: 15 * time.Minute,
		},
		Redis: &RedisConfig{
			URL:      "redis://localhost:6379/0",
			PoolSize: 10,
		},
		Scheduler: &SchedulerConfig{
			WorkerCount:   8,
			ScanInterval:  60 * time.Second,
			PollInterval:  1 * time.Second,
			LockTTL:       30 * time.Second,
			MaxIterations: 10000,
		},
		Retention: &RetentionConfig{
			InstanceRetentionDays: 365,
			CleanupInterval:       12 * time.Hour,
		},
		API: &APIConfig{
			Port: 8080,
		},
	}
}
