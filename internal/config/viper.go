// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Parser struct {
		ChunkSize  int  `mapstructure:"chunk_size" yaml:"chunk_size"`
		BatchSize  int  `mapstructure:"batch_size" yaml:"batch_size"`
		MaxErrors  int  `mapstructure:"max_errors" yaml:"max_errors"`
		SkipErrors bool `mapstructure:"skip_errors" yaml:"skip_errors"`
	} `mapstructure:"parser" yaml:"parser"`

	Cache struct {
		TTLMinutes int `mapstructure:"ttl_minutes" yaml:"ttl_minutes"`
	} `mapstructure:"cache" yaml:"cache"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then EINVOICE_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.einvoice-csv")
	v.AddConfigPath(".einvoice-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EINVOICE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and environment variables.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("parser.chunk_size", 1000)
	v.SetDefault("parser.batch_size", 500)
	v.SetDefault("parser.max_errors", 100)
	v.SetDefault("parser.skip_errors", true)

	v.SetDefault("cache.ttl_minutes", 5)

	v.SetDefault("categories.file", "")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Parser.ChunkSize < 1 {
		return fmt.Errorf("parser.chunk_size must be positive, got: %d", config.Parser.ChunkSize)
	}
	if config.Parser.BatchSize < 1 {
		return fmt.Errorf("parser.batch_size must be positive, got: %d", config.Parser.BatchSize)
	}
	if config.Parser.MaxErrors < 1 {
		return fmt.Errorf("parser.max_errors must be positive, got: %d", config.Parser.MaxErrors)
	}

	if config.Cache.TTLMinutes < 1 {
		return fmt.Errorf("cache.ttl_minutes must be positive, got: %d", config.Cache.TTLMinutes)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
