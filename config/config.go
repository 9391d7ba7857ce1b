package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultConcurrency = 4
	DefaultFormat      = "json"
	DefaultLogLevel    = "info"
)

type Log struct {
	Level string
}

type Config struct {
	Concurrency int
	Format      string
	Log         Log
}

func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("log.level", DefaultLogLevel)

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigType("yaml")
		v.SetConfigName("safegate")

		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to merge config: %w", err)
			}
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
