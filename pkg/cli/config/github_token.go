package config

import (
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/github"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// GitHubToken is a personal access token, used when no GitHub App is configured
type GitHubToken struct {
	token types.GitHubToken `masq:"secret"`
}

func (x *GitHubToken) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("APTPAGES_GITHUB_TOKEN", "PAT"),
		},
	}
}

func (x *GitHubToken) Enabled() bool {
	return x.token != ""
}

func (x *GitHubToken) Token() types.GitHubToken {
	return x.token
}

func (x *GitHubToken) TokenSource() oauth2.TokenSource {
	return github.NewTokenSource(x.token)
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
	)
}
