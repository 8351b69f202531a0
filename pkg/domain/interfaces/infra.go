package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitClient GitRepository ReleaseSource DebTools SnapshotStore Generator

import (
	"context"
	"io"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error
	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type CloneInput struct {
	URL    string
	Branch types.BranchName
	Dir    string
	Depth  int
}

// GitClient produces working copies of remote or local repositories
type GitClient interface {
	Clone(ctx context.Context, input *CloneInput) (GitRepository, error)
	Open(ctx context.Context, dir string) (GitRepository, error)
}

type CommitInput struct {
	Message     string
	AuthorName  string
	AuthorEmail string
	When        time.Time
}

// GitRepository is a working copy owned by a single Run
type GitRepository interface {
	Dir() string
	Head(ctx context.Context) (types.CommitSHA, error)
	// IsClean reports whether nothing is modified, added or removed in the worktree
	IsClean(ctx context.Context) (bool, error)
	// CommitAll stages every change including deletions and creates one commit
	CommitAll(ctx context.Context, input *CommitInput) (types.CommitSHA, error)
	// ForcePush overwrites the remote branch with the local one
	ForcePush(ctx context.Context, branch types.BranchName) error
}

// ReleaseSource lists releases of package repositories and fetches their assets
type ReleaseSource interface {
	ListReleases(ctx context.Context, owner, repo string) ([]*model.Release, error)
	DownloadAsset(ctx context.Context, url string, w io.Writer) error
}

// DebTools wraps the Debian archive tooling
type DebTools interface {
	// ScanPackages returns the control stanzas of the .deb files under dir
	ScanPackages(ctx context.Context, dir string) (string, error)
	// Release writes the Release file content of a dists/<suite> directory
	Release(ctx context.Context, workDir, confPath, releaseDir string, w io.Writer) error
}

// SnapshotStore keeps full-state archives of the published tree per generation
type SnapshotStore interface {
	Put(ctx context.Context, key types.GroupKey, generation string, r io.Reader) error
	Get(ctx context.Context, key types.GroupKey, generation string, w io.Writer) error
	List(ctx context.Context, key types.GroupKey) ([]string, error)
}

// Generator mutates the output directory of a Run
type Generator interface {
	Generate(ctx context.Context, input *model.GenerateInput) error
}
