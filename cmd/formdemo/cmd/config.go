package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

const serviceName = "formdemo"

// Config is read from FORMDEMO_* variables and optional .env files.
type Config struct {
	Env          string        `env:"ENV" envDefault:"development"`
	LogLevel     string        `env:"LOG_LEVEL"`
	LogFormat    string        `env:"LOG_FORMAT"`
	ImageTimeout time.Duration `env:"IMAGE_TIMEOUT" envDefault:"10s"`
}

// Logger builds the CLI logger. Explicit level and format override the
// environment defaults.
func (c Config) Logger(w io.Writer, verbose bool) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, serviceName),
		logger.WithOutput(w),
	}

	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}

	if c.LogFormat != "" {
		format, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}
