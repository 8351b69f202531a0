package cli

import (
	"context"

	"github.com/m-mizutani/aptpages/pkg/cli/config"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// Version is set at build time with -ldflags "-X"
var Version = "dev"

type CLI struct {
	commands []*cli.Command
}

func New() *CLI {
	return &CLI{
		commands: []*cli.Command{
			serveCommand(),
			runCommand(),
			generateCommand(),
		},
	}
}

func (x *CLI) Run(argv []string) error {
	return x.RunContext(context.Background(), argv)
}

// RunContext runs the command line with ctx as the root context
func (x *CLI) RunContext(ctx context.Context, argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:     "aptpages",
		Usage:    "Regenerate an APT repository and publish it to a git branch",
		Version:  Version,
		Flags:    logCfg.Flags(),
		Commands: x.commands,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logCfg.Format(), logCfg.Level(), logCfg.Output()); err != nil {
				return ctx, err
			}
			logging.Default().Debug("aptpages", "version", Version, "log", &logCfg)
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
