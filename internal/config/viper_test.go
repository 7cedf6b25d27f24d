package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 1000, cfg.Parser.ChunkSize)
	assert.Equal(t, 500, cfg.Parser.BatchSize)
	assert.Equal(t, 100, cfg.Parser.MaxErrors)
	assert.True(t, cfg.Parser.SkipErrors)
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EINVOICE_LOG_LEVEL", "debug")
	t.Setenv("EINVOICE_PARSER_CHUNK_SIZE", "250")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Parser.ChunkSize)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg, err := InitializeConfig()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }},
		{"zero chunk size", func(c *Config) { c.Parser.ChunkSize = 0 }},
		{"negative batch size", func(c *Config) { c.Parser.BatchSize = -1 }},
		{"zero max errors", func(c *Config) { c.Parser.MaxErrors = 0 }},
		{"zero cache ttl", func(c *Config) { c.Cache.TTLMinutes = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}

	assert.NoError(t, validateConfig(valid()))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EINVOICE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("EINVOICE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EINVOICE_TEST_MISSING", "fallback"))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
