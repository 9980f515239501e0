package config

import "fmt"

// validate checks the merged configuration for values the engine cannot run
// with. It reports the first failure — configuration is small enough that
// collecting all errors buys nothing over fixing them one at a time.
func validate(cfg *Config) error {
	if cfg.Database == nil || cfg.Database.Host == "" {
		return &ValidationError{Section: "database", Field: "host", Err: ErrMissingRequiredField}
	}
	if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
		return &ValidationError{Section: "database", Field: "port", Err: fmt.Errorf("%w: %d", ErrInvalidValue, cfg.Database.Port)}
	}
	if cfg.Database.Database == "" {
		return &ValidationError{Section: "database", Field: "database", Err: ErrMissingRequiredField}
	}

	if cfg.Redis == nil || cfg.Redis.URL == "" {
		return &ValidationError{Section: "redis", Field: "url", Err: ErrMissingRequiredField}
	}

	if cfg.Scheduler == nil {
		return &ValidationError{Section: "scheduler", Err: ErrMissingRequiredField}
	}
	if cfg.Scheduler.WorkerCount <= 0 {
		return &ValidationError{Section: "scheduler", Field: "worker_count", Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}
	if cfg.Scheduler.MaxIterations <= 0 {
		return &ValidationError{Section: "scheduler", Field: "max_iterations", Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}
	if cfg.Scheduler.LockTTL <= 0 {
		return &ValidationError{Section: "scheduler", Field: "lock_ttl", Err: fmt.Errorf("%w: must be positive", ErrInvalidValue)}
	}

	if cfg.Retention != nil && cfg.Retention.InstanceRetentionDays < 0 {
		return &ValidationError{Section: "retention", Field: "instance_retention_days", Err: fmt.Errorf("%w: must not be negative", ErrInvalidValue)}
	}

	if cfg.API != nil && (cfg.API.Port <= 0 || cfg.API.Port > 65535) {
		return &ValidationError{Section: "api", Field: "port", Err: fmt.Errorf("%w: %d", ErrInvalidValue, cfg.API.Port)}
	}

	return nil
}
