package infra

import (
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/infra/git"
	"github.com/m-mizutani/aptpages/pkg/repository/memory"
	"golang.org/x/oauth2"
)

type Clients struct {
	gitClient     interfaces.GitClient
	releaseSource interfaces.ReleaseSource
	debTools      interfaces.DebTools
	bqClient      interfaces.BigQuery
	snapshotStore interfaces.SnapshotStore
	runRepository interfaces.RunRepository
	tokenSource   oauth2.TokenSource
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		gitClient:     git.New(),
		runRepository: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Git() interfaces.GitClient {
	return x.gitClient
}
func (x *Clients) ReleaseSource() interfaces.ReleaseSource {
	return x.releaseSource
}

// DebTools returns nil when the Debian archive tools are disabled
func (x *Clients) DebTools() interfaces.DebTools {
	return x.debTools
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) SnapshotStore() interfaces.SnapshotStore {
	return x.snapshotStore
}
func (x *Clients) RunRepository() interfaces.RunRepository {
	return x.runRepository
}

// TokenSource returns nil when no GitHub credential is configured
func (x *Clients) TokenSource() oauth2.TokenSource {
	return x.tokenSource
}

func WithGit(client interfaces.GitClient) Option {
	return func(x *Clients) {
		x.gitClient = client
	}
}

func WithReleaseSource(client interfaces.ReleaseSource) Option {
	return func(x *Clients) {
		x.releaseSource = client
	}
}

func WithDebTools(client interfaces.DebTools) Option {
	return func(x *Clients) {
		x.debTools = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithSnapshotStore(store interfaces.SnapshotStore) Option {
	return func(x *Clients) {
		x.snapshotStore = store
	}
}

func WithRunRepository(repo interfaces.RunRepository) Option {
	return func(x *Clients) {
		x.runRepository = repo
	}
}

func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(x *Clients) {
		x.tokenSource = ts
	}
}
