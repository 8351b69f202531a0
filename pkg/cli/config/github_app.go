package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/ghapp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// GitHubApp authenticates git and the GitHub API as an App installation
type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("APTPAGES_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID (default: looked up by the owner of the remote)",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("APTPAGES_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("APTPAGES_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHubApp) Enabled() bool {
	return x.id != 0 && x.privateKey != ""
}

// TokenSource returns installation tokens for owner/repo. The installation
// is looked up when no installation ID is configured.
func (x *GitHubApp) TokenSource(ctx context.Context, owner, repo string) (oauth2.TokenSource, error) {
	client, err := ghapp.New(x.id, x.privateKey)
	if err != nil {
		return nil, err
	}

	installID := x.installID
	if installID == 0 {
		if owner == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is required when the remote owner is unknown")
		}
		if installID, err = client.FindInstallation(ctx, owner, repo); err != nil {
			return nil, err
		}
	}

	return client.TokenSource(ctx, installID)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallationID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
