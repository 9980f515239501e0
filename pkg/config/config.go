// Package config loads and validates the engine's configuration from
// engine.yaml plus environment variables.
package config

import "time"

// Config is the fully-merged, validated engine configuration.
type Config struct {
	Database  *DatabaseConfig  `yaml:"database"`
	Redis     *RedisConfig     `yaml:"redis"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Retention *RetentionConfig `yaml:"retention"`
	API       *APIConfig       `yaml:"api"`
}

// DatabaseConfig holds durable-store connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// RedisConfig holds fast-store connection settings.
type RedisConfig struct {
	// URL is a redis:// connection string, e.g. "redis://localhost:6379/0".
	URL      string `yaml:"url"`
	PoolSize int    `yaml:"pool_size"`
}

// SchedulerConfig controls the timer scheduler and the run loop.
type SchedulerConfig struct {
	// WorkerCount is the number of run-loop worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// ScanInterval is how often process definitions are rescanned for timer
	// start events.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// PollInterval is how often the timer job store is polled for due jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// LockTTL is the per-instance lock lifetime; refreshed mid-batch for
	// long-running instances.
	LockTTL time.Duration `yaml:"lock_ttl"`

	// MaxIterations bounds the number of token dispatches one run-loop call
	// may perform before failing the instance.
	MaxIterations int `yaml:"max_iterations"`
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// InstanceRetentionDays is how many days to keep COMPLETED instances
	// (and their variables and activity logs) before deleting them.
	InstanceRetentionDays int `yaml:"instance_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// APIConfig holds the HTTP surface settings.
type APIConfig struct {
	Port int `yaml:"port"`
}
