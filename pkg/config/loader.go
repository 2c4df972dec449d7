package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	prefix   string
	envFiles []string
}

// WithPrefix restricts parsing to variables starting with prefix, e.g. "FORMDEMO_".
func WithPrefix(prefix string) Option {
	return func(c *loadConfig) {
		c.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env file, listed files must exist.
func WithEnvFiles(paths ...string) Option {
	return func(c *loadConfig) {
		c.envFiles = append(c.envFiles, paths...)
	}
}

// Load parses environment variables into a new T according to its `env`
// field tags. Variables already set in the process environment win over
// values from .env files.
//
// Example:
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[AppConfig](config.WithPrefix("FORMDEMO_"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	lc := &loadConfig{}
	for _, opt := range opts {
		opt(lc)
	}

	if err := loadEnvFiles(lc.envFiles); err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: lc.prefix}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func loadEnvFiles(paths []string) error {
	if len(paths) == 0 {
		// The default .env file is optional.
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
