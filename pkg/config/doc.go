// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for parsing tagged structs:
//
//	type Config struct {
//		Env      string        `env:"ENV" envDefault:"development"`
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//		Timeout  time.Duration `env:"IMAGE_TIMEOUT" envDefault:"5s"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("FORMDEMO_"))
//
// Process environment variables take precedence over .env values.
package config
