package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validate(DefaultConfig()))
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "host"},
		{"bad db port", func(c *Config) { c.Database.Port = -1 }, "port"},
		{"missing redis url", func(c *Config) { c.Redis.URL = "" }, "url"},
		{"zero workers", func(c *Config) { c.Scheduler.WorkerCount = 0 }, "worker_count"},
		{"zero max iterations", func(c *Config) { c.Scheduler.MaxIterations = 0 }, "max_iterations"},
		{"zero lock ttl", func(c *Config) { c.Scheduler.LockTTL = 0 }, "lock_ttl"},
		{"negative retention", func(c *Config) { c.Retention.InstanceRetentionDays = -1 }, "instance_retention_days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
