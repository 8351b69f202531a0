package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/cli/config"
	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/infra/git"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// pipeline is the flag set shared by the commands executing Runs
type pipeline struct {
	git       config.Git
	githubApp config.GitHubApp
	githubPAT config.GitHubToken
	generator config.Generator
	firestore config.Firestore
	bigQuery  config.BigQuery
	storage   config.Storage
	sentry    config.Sentry
}

func (x *pipeline) Flags() []cli.Flag {
	return slice.Flatten(
		x.git.Flags(),
		x.githubApp.Flags(),
		x.githubPAT.Flags(),
		x.generator.Flags(),
		x.firestore.Flags(),
		x.bigQuery.Flags(),
		x.storage.Flags(),
		x.sentry.Flags(),
	)
}

func (x *pipeline) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Git", &x.git),
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("GitHubToken", x.githubPAT),
		slog.Any("Generator", &x.generator),
		slog.Any("Firestore", &x.firestore),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Storage", &x.storage),
		slog.Any("Sentry", &x.sentry),
	)
}

// tokenSource prefers the GitHub App over a personal access token. It
// returns nil when neither is configured.
func (x *pipeline) tokenSource(ctx context.Context, remoteURL string) (oauth2.TokenSource, error) {
	switch {
	case x.githubApp.Enabled():
		owner, repo, err := ParseGitHubRemote(remoteURL)
		if err != nil {
			logging.From(ctx).Debug("owner of remote is unknown", slog.Any("error", err))
		}
		return x.githubApp.TokenSource(ctx, owner, repo)

	case x.githubPAT.Enabled():
		return x.githubPAT.TokenSource(), nil

	default:
		logging.From(ctx).Warn("no GitHub credential is configured, access is anonymous")
		return nil, nil
	}
}

// newClients builds the infrastructure of a Run
func (x *pipeline) newClients(ctx context.Context) (*infra.Clients, error) {
	if x.git.RemoteURL() == "" && x.git.SourceURL() != "" {
		x.git.SetRemoteURL(x.git.SourceURL())
	}
	if x.git.RemoteURL() == "" {
		remoteURL, err := DetectRemoteURL(x.git.SourceDir())
		if err != nil {
			return nil, goerr.Wrap(err, "remote URL is not set and can not be detected from the source directory")
		}
		x.git.SetRemoteURL(remoteURL)
		logging.From(ctx).Info("remote URL detected", slog.String("url", remoteURL))
	}

	ts, err := x.tokenSource(ctx, x.git.RemoteURL())
	if err != nil {
		return nil, err
	}

	releases, err := x.generator.NewReleaseSource(ts)
	if err != nil {
		return nil, err
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	options := []infra.Option{
		infra.WithGit(git.New(git.WithTokenSource(ts))),
		infra.WithReleaseSource(releases),
		infra.WithRunRepository(repo),
	}
	if ts != nil {
		options = append(options, infra.WithTokenSource(ts))
	}
	if tools := x.generator.NewDebTools(); tools != nil {
		options = append(options, infra.WithDebTools(tools))
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	if store, err := x.storage.NewClient(ctx); err != nil {
		return nil, err
	} else if store != nil {
		options = append(options, infra.WithSnapshotStore(store))
	}

	return infra.New(options...), nil
}

// newUseCase configures error reporting and builds the Run pipeline
func (x *pipeline) newUseCase(ctx context.Context) (*usecase.UseCase, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	clients, err := x.newClients(ctx)
	if err != nil {
		return nil, err
	}

	gen, err := x.generator.New(clients)
	if err != nil {
		return nil, err
	}

	options := append(x.git.Options(), usecase.WithGenerator(gen))
	return usecase.New(clients, options...), nil
}
