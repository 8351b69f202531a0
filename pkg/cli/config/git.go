package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Git is the pair of branches a Run reads from and publishes to
type Git struct {
	remoteURL     string
	sourceURL     string
	sourceDir     string
	sourceBranch  string
	publishBranch string
	outputDir     string
	workflow      string
	authorName    string
	authorEmail   string
	slotTTL       time.Duration
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "remote-url",
			Usage:       "Git URL of the published branch (default: origin of the source directory)",
			Category:    "Git",
			Destination: &x.remoteURL,
			Sources:     cli.EnvVars("APTPAGES_REMOTE_URL"),
		},
		&cli.StringFlag{
			Name:        "source-url",
			Usage:       "Git URL of the source branch. When set, the source is cloned for every Run",
			Category:    "Git",
			Destination: &x.sourceURL,
			Sources:     cli.EnvVars("APTPAGES_SOURCE_URL"),
		},
		&cli.StringFlag{
			Name:        "source-dir",
			Usage:       "Local checkout of the source branch",
			Category:    "Git",
			Value:       ".",
			Destination: &x.sourceDir,
			Sources:     cli.EnvVars("APTPAGES_SOURCE_DIR"),
		},
		&cli.StringFlag{
			Name:        "source-branch",
			Usage:       "Branch whose pushes trigger a Run",
			Category:    "Git",
			Value:       usecase.DefaultSourceBranch.String(),
			Destination: &x.sourceBranch,
			Sources:     cli.EnvVars("APTPAGES_SOURCE_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "publish-branch",
			Usage:       "Branch receiving the generated index",
			Category:    "Git",
			Value:       usecase.DefaultPublishBranch.String(),
			Destination: &x.publishBranch,
			Sources:     cli.EnvVars("APTPAGES_PUBLISH_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Output directory relative to the source directory",
			Category:    "Git",
			Value:       usecase.DefaultOutputDir,
			Destination: &x.outputDir,
			Sources:     cli.EnvVars("APTPAGES_OUTPUT_DIRNAME"),
		},
		&cli.StringFlag{
			Name:        "workflow",
			Usage:       "Workflow name, part of the concurrency group key",
			Category:    "Git",
			Value:       usecase.DefaultWorkflow,
			Destination: &x.workflow,
			Sources:     cli.EnvVars("APTPAGES_WORKFLOW"),
		},
		&cli.StringFlag{
			Name:        "author-name",
			Usage:       "Author name of publish commits",
			Category:    "Git",
			Value:       usecase.DefaultAuthorName,
			Destination: &x.authorName,
			Sources:     cli.EnvVars("APTPAGES_AUTHOR_NAME"),
		},
		&cli.StringFlag{
			Name:        "author-email",
			Usage:       "Author email of publish commits",
			Category:    "Git",
			Value:       usecase.DefaultAuthorEmail,
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("APTPAGES_AUTHOR_EMAIL"),
		},
		&cli.DurationFlag{
			Name:        "slot-ttl",
			Usage:       "Lifetime of the concurrency slot held by a Run",
			Category:    "Git",
			Value:       usecase.DefaultSlotTTL,
			Destination: &x.slotTTL,
			Sources:     cli.EnvVars("APTPAGES_SLOT_TTL"),
		},
	}
}

// RemoteURL returns the configured remote of the published branch
func (x *Git) RemoteURL() string {
	return x.remoteURL
}

func (x *Git) SetRemoteURL(url string) {
	x.remoteURL = url
}

func (x *Git) SourceDir() string {
	return x.sourceDir
}

func (x *Git) SourceURL() string {
	return x.sourceURL
}

func (x *Git) SourceRef() string {
	return types.BranchName(x.sourceBranch).Ref()
}

// Options converts the flags into usecase options
func (x *Git) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithRemoteURL(x.remoteURL),
		usecase.WithSourceURL(x.sourceURL),
		usecase.WithSourceDir(x.sourceDir),
		usecase.WithSourceBranch(types.BranchName(x.sourceBranch)),
		usecase.WithPublishBranch(types.BranchName(x.publishBranch)),
		usecase.WithOutputDir(x.outputDir),
		usecase.WithWorkflow(x.workflow),
		usecase.WithAuthor(x.authorName, x.authorEmail),
		usecase.WithSlotTTL(x.slotTTL),
	}
}

func (x *Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RemoteURL", x.remoteURL),
		slog.String("SourceURL", x.sourceURL),
		slog.String("SourceDir", x.sourceDir),
		slog.String("SourceBranch", x.sourceBranch),
		slog.String("PublishBranch", x.publishBranch),
		slog.String("OutputDir", x.outputDir),
		slog.String("Workflow", x.workflow),
		slog.Duration("SlotTTL", x.slotTTL),
	)
}
