package usecase

import (
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra"
)

const (
	DefaultWorkflow      = "publish"
	DefaultSourceBranch  = types.BranchName("main")
	DefaultPublishBranch = types.BranchName("gh-pages")
	DefaultOutputDir     = "dist"
	DefaultAuthorName    = "github-actions[bot]"
	DefaultAuthorEmail   = "41898282+github-actions[bot]@users.noreply.github.com"

	// DefaultSlotTTL is the run-time ceiling of one Run
	DefaultSlotTTL      = 6 * time.Hour
	DefaultPollInterval = 5 * time.Second
)

type UseCase struct {
	clients   *infra.Clients
	generator interfaces.Generator

	workflow      string
	sourceBranch  types.BranchName
	publishBranch types.BranchName
	remoteURL     string
	sourceURL     string
	sourceDir     string
	outputDir     string
	authorName    string
	authorEmail   string
	slotTTL       time.Duration
	pollInterval  time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithGenerator sets the index generator that mutates the output directory
func WithGenerator(gen interfaces.Generator) Option {
	return func(x *UseCase) {
		x.generator = gen
	}
}

// WithWorkflow sets the workflow name, the first half of the concurrency group key
func WithWorkflow(name string) Option {
	return func(x *UseCase) {
		x.workflow = name
	}
}

func WithSourceBranch(branch types.BranchName) Option {
	return func(x *UseCase) {
		x.sourceBranch = branch
	}
}

func WithPublishBranch(branch types.BranchName) Option {
	return func(x *UseCase) {
		x.publishBranch = branch
	}
}

// WithRemoteURL sets the clone URL of the repository owning the published branch
func WithRemoteURL(url string) Option {
	return func(x *UseCase) {
		x.remoteURL = url
	}
}

// WithSourceURL makes every Run clone the source branch instead of using a local checkout
func WithSourceURL(url string) Option {
	return func(x *UseCase) {
		x.sourceURL = url
	}
}

// WithSourceDir sets the local source checkout used when no source URL is set
func WithSourceDir(dir string) Option {
	return func(x *UseCase) {
		x.sourceDir = dir
	}
}

// WithOutputDir sets the output directory name relative to the source checkout
func WithOutputDir(dir string) Option {
	return func(x *UseCase) {
		x.outputDir = dir
	}
}

func WithAuthor(name, email string) Option {
	return func(x *UseCase) {
		x.authorName = name
		x.authorEmail = email
	}
}

func WithSlotTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.slotTTL = ttl
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(x *UseCase) {
		x.pollInterval = interval
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		workflow:      DefaultWorkflow,
		sourceBranch:  DefaultSourceBranch,
		publishBranch: DefaultPublishBranch,
		sourceDir:     ".",
		outputDir:     DefaultOutputDir,
		authorName:    DefaultAuthorName,
		authorEmail:   DefaultAuthorEmail,
		slotTTL:       DefaultSlotTTL,
		pollInterval:  DefaultPollInterval,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// SourceRef returns the fully qualified ref that push triggers must match
func (x *UseCase) SourceRef() string {
	return x.sourceBranch.Ref()
}
