package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/internal/scenario"
	"github.com/dmitrymomot/formkit/internal/showcase"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// ErrScenarioFailed is returned when at least one expectation did not hold.
var ErrScenarioFailed = errors.New("scenario failed")

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file against its form",
		Long: `Runs every step of a scenario file and prints the resulting errors.

Examples:
  formdemo run scenarios/user_profile.yaml
  FORMDEMO_LOG_LEVEL=debug formdemo run scenarios/image_submission.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: a.run,
	}
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	f, err := showcase.New(sc.Form, showcase.Options{
		Logger:       a.log,
		ImageTimeout: a.cfg.ImageTimeout,
	})
	if err != nil {
		return err
	}

	report, runErr := scenario.Run(ctx, f, sc, a.log)
	if err := report.Write(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if runErr != nil {
		if errors.Is(runErr, scenario.ErrExpectation) {
			a.log.WarnContext(ctx, "scenario failed", logger.Form(sc.Form), logger.Error(runErr))
			return fmt.Errorf("%w: %s", ErrScenarioFailed, args[0])
		}
		return runErr
	}

	a.log.InfoContext(ctx, "scenario passed", logger.Form(sc.Form), slog.Int("steps", len(report.Steps)))
	return nil
}
