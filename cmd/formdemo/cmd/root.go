package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
)

const envPrefix = "FORMDEMO_"

type app struct {
	envFiles []string
	verbose  bool

	cfg Config
	log *slog.Logger
}

// NewRootCommand builds the formdemo command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "formdemo",
		Short: "Run form validation showcases",
		Long: `formdemo drives the bundled form showcases through scripted scenarios
and reports the validation errors and alerts after every step.

Configuration (environment or .env):
  FORMDEMO_ENV            development | staging | production
  FORMDEMO_LOG_LEVEL      debug | info | warn | error
  FORMDEMO_LOG_FORMAT     text | json
  FORMDEMO_IMAGE_TIMEOUT  image load timeout, e.g. 5s`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load variables from these .env files")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(newFormsCommand(), newRunCommand(a))
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}

	cfg, err := config.Load[Config](opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := cfg.Logger(cmd.ErrOrStderr(), a.verbose)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	a.cfg, a.log = cfg, log
	return nil
}
