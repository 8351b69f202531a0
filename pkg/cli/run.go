package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var (
		trigger     string
		triggeredBy string
		commitID    string
		p           pipeline
	)

	runFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "trigger",
			Usage:       "Trigger kind [push|manual|schedule]",
			Value:       string(types.TriggerManual),
			Sources:     cli.EnvVars("APTPAGES_TRIGGER"),
			Destination: &trigger,
		},
		&cli.StringFlag{
			Name:        "triggered-by",
			Usage:       "Actor recorded in the Run",
			Sources:     cli.EnvVars("APTPAGES_TRIGGERED_BY", "GITHUB_ACTOR"),
			Destination: &triggeredBy,
		},
		&cli.StringFlag{
			Name:        "commit-id",
			Usage:       "Source commit of a push trigger",
			Sources:     cli.EnvVars("APTPAGES_COMMIT_ID", "GITHUB_SHA"),
			Destination: &commitID,
		},
	}

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Execute one Run in the foreground",
		Flags:   append(runFlags, p.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting run", slog.String("trigger", trigger), slog.Any("config", &p))

			uc, err := p.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer p.sentry.Flush()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			run, err := uc.NewRun(ctx, &model.Trigger{
				Kind:        types.TriggerKind(trigger),
				TriggeredBy: triggeredBy,
				CommitID:    types.CommitSHA(commitID),
			})
			if err != nil {
				return goerr.Wrap(err, "trigger is not admitted", goerr.V("trigger", trigger))
			}

			if err := uc.ExecuteRun(ctx, run); err != nil {
				return err
			}

			stored, err := uc.GetRun(context.WithoutCancel(ctx), run.ID)
			if err != nil {
				return err
			}
			logging.Default().Info("run done",
				slog.Any("run_id", stored.ID),
				slog.Any("outcome", stored.Outcome),
				slog.Any("published_commit", stored.PublishedCommit),
			)
			return nil
		},
	}
}
