package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/aptpages/pkg/cli/config"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

func generateCommand() *cli.Command {
	var (
		sourceDir string
		outputDir string
		generator config.Generator
		githubPAT config.GitHubToken
	)

	generateFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "source-dir",
			Usage:       "Directory containing config.toml and public/",
			Value:       ".",
			Sources:     cli.EnvVars("APTPAGES_SOURCE_DIR"),
			Destination: &sourceDir,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Output directory (default: output_dir of config.toml)",
			Sources:     cli.EnvVars(usecase.EnvOutputDir),
			Destination: &outputDir,
		},
	}

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Build the APT repository into a local directory without publishing",
		Flags: slice.Flatten(
			generateFlags,
			generator.Flags(),
			githubPAT.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if outputDir == "" {
				cfg, err := usecase.LoadAptConfig(sourceDir)
				if err != nil {
					return err
				}
				outputDir = filepath.Join(sourceDir, cfg.OutputDir)
			}

			logging.Default().Info("starting generate",
				slog.String("SourceDir", sourceDir),
				slog.String("OutputDir", outputDir),
				slog.Any("Generator", &generator),
				slog.Any("GitHubToken", githubPAT),
			)

			input := &model.GenerateInput{
				SourceDir: sourceDir,
				OutputDir: outputDir,
			}

			var ts oauth2.TokenSource
			if githubPAT.Enabled() {
				ts = githubPAT.TokenSource()
				input.Credential = githubPAT.Token()
			}

			releases, err := generator.NewReleaseSource(ts)
			if err != nil {
				return err
			}
			clientOptions := []infra.Option{infra.WithReleaseSource(releases)}
			if tools := generator.NewDebTools(); tools != nil {
				clientOptions = append(clientOptions, infra.WithDebTools(tools))
			}

			gen, err := generator.New(infra.New(clientOptions...))
			if err != nil {
				return err
			}

			return gen.Generate(ctx, input)
		},
	}
}
