package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/infra/debtools"
	"github.com/m-mizutani/aptpages/pkg/infra/github"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Generator selects the index generator of a Run. Without a command the
// built-in APT generator is used.
type Generator struct {
	command          string
	debTools         bool
	scanPackagesPath string
	ftpArchivePath   string
	githubAPIURL     string
}

func (x *Generator) Flags() []cli.Flag {
	_, inCI := os.LookupEnv("CI")

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "generator-command",
			Usage:       "External generator command, e.g. \"python main.py\" (default: built-in APT generator)",
			Category:    "Generator",
			Destination: &x.command,
			Sources:     cli.EnvVars("APTPAGES_GENERATOR_COMMAND"),
		},
		&cli.BoolFlag{
			Name:        "deb-tools",
			Usage:       "Scan packages and write Release with dpkg-scanpackages and apt-ftparchive (default: true when CI is set)",
			Category:    "Generator",
			Value:       inCI,
			Destination: &x.debTools,
			Sources:     cli.EnvVars("APTPAGES_DEB_TOOLS"),
		},
		&cli.StringFlag{
			Name:        "dpkg-scanpackages-path",
			Usage:       "Path to dpkg-scanpackages",
			Category:    "Generator",
			Value:       "dpkg-scanpackages",
			Destination: &x.scanPackagesPath,
			Sources:     cli.EnvVars("APTPAGES_DPKG_SCANPACKAGES_PATH"),
		},
		&cli.StringFlag{
			Name:        "apt-ftparchive-path",
			Usage:       "Path to apt-ftparchive",
			Category:    "Generator",
			Value:       "apt-ftparchive",
			Destination: &x.ftpArchivePath,
			Sources:     cli.EnvVars("APTPAGES_APT_FTPARCHIVE_PATH"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Base URL of the GitHub REST API",
			Category:    "Generator",
			Destination: &x.githubAPIURL,
			Sources:     cli.EnvVars("APTPAGES_GITHUB_API_URL"),
		},
	}
}

// NewReleaseSource returns the GitHub client listing releases. ts may be nil.
func (x *Generator) NewReleaseSource(ts oauth2.TokenSource) (interfaces.ReleaseSource, error) {
	var options []github.Option
	if ts != nil {
		options = append(options, github.WithTokenSource(ts))
	}
	if x.githubAPIURL != "" {
		options = append(options, github.WithBaseURL(x.githubAPIURL))
	}

	client, err := github.New(options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewDebTools returns nil when deb tools are disabled
func (x *Generator) NewDebTools() interfaces.DebTools {
	if !x.debTools {
		return nil
	}
	return debtools.New(
		debtools.WithScanPackagesPath(x.scanPackagesPath),
		debtools.WithFTPArchivePath(x.ftpArchivePath),
	)
}

// New builds the generator on top of the release source and deb tools of clients
func (x *Generator) New(clients *infra.Clients) (interfaces.Generator, error) {
	if x.command != "" {
		return usecase.NewCommandGenerator(strings.Fields(x.command))
	}
	return usecase.NewAptGenerator(clients.ReleaseSource(), clients.DebTools()), nil
}

func (x *Generator) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Command", x.command),
		slog.Bool("DebTools", x.debTools),
		slog.String("GitHubAPIURL", x.githubAPIURL),
	)
}
