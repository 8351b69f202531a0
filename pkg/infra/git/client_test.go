package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/git"
	"github.com/m-mizutani/aptpages/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

const publishBranch = "gh-pages"

func cloneForTest(t *testing.T, remote *testutil.RemoteRepo) interfaces.GitRepository {
	t.Helper()
	client := git.New()
	repo, err := client.Clone(context.Background(), &interfaces.CloneInput{
		URL:    remote.Dir,
		Branch: publishBranch,
		Dir:    filepath.Join(t.TempDir(), "dist"),
		Depth:  1,
	})
	gt.NoError(t, err)
	return repo
}

func commitInput() *interfaces.CommitInput {
	return &interfaces.CommitInput{
		Message:     "update at 2024-01-01T00:00:00Z",
		AuthorName:  "github-actions[bot]",
		AuthorEmail: "41898282+github-actions[bot]@users.noreply.github.com",
		When:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCloneAndClean(t *testing.T) {
	remote := testutil.NewRemoteRepo(t, publishBranch, map[string]string{"index.json": "A"})
	repo := cloneForTest(t, remote)

	head, err := repo.Head(context.Background())
	gt.NoError(t, err)
	gt.V(t, head.String()).Equal(remote.Tip(t, publishBranch).Hash.String())

	// Rewriting identical content leaves the worktree clean
	gt.NoError(t, os.WriteFile(filepath.Join(repo.Dir(), "index.json"), []byte("A"), 0644))
	clean, err := repo.IsClean(context.Background())
	gt.NoError(t, err)
	gt.True(t, clean)
}

func TestCommitAllAndForcePush(t *testing.T) {
	ctx := context.Background()
	remote := testutil.NewRemoteRepo(t, publishBranch, map[string]string{
		"index.json": "A",
		"stale.txt":  "old",
	})
	base := remote.Tip(t, publishBranch).Hash.String()
	repo := cloneForTest(t, remote)

	gt.NoError(t, os.WriteFile(filepath.Join(repo.Dir(), "index.json"), []byte("B"), 0644))
	gt.NoError(t, os.Remove(filepath.Join(repo.Dir(), "stale.txt")))
	gt.NoError(t, os.MkdirAll(filepath.Join(repo.Dir(), "dists", "stable"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(repo.Dir(), "dists", "stable", "Release"), []byte("Suite: stable\n"), 0644))

	clean, err := repo.IsClean(ctx)
	gt.NoError(t, err)
	gt.False(t, clean)

	sha, err := repo.CommitAll(ctx, commitInput())
	gt.NoError(t, err)
	gt.NoError(t, repo.ForcePush(ctx, publishBranch))

	tip := remote.Tip(t, publishBranch)
	gt.V(t, tip.Hash.String()).Equal(sha.String())
	gt.V(t, tip.NumParents()).Equal(1)
	gt.V(t, tip.ParentHashes[0].String()).Equal(base)
	gt.V(t, tip.Author.Name).Equal("github-actions[bot]")
	gt.V(t, tip.Message).Equal("update at 2024-01-01T00:00:00Z")

	gt.V(t, remote.ReadFile(t, publishBranch, "index.json")).Equal("B")
	gt.V(t, remote.ReadFile(t, publishBranch, "dists/stable/Release")).Equal("Suite: stable\n")
	gt.False(t, remote.HasFile(t, publishBranch, "stale.txt"))

	clean, err = repo.IsClean(ctx)
	gt.NoError(t, err)
	gt.True(t, clean)
}

func TestForcePushUpToDate(t *testing.T) {
	remote := testutil.NewRemoteRepo(t, publishBranch, map[string]string{"index.json": "A"})
	repo := cloneForTest(t, remote)
	gt.NoError(t, repo.ForcePush(context.Background(), types.BranchName(publishBranch)))
}

func TestForcePushFailure(t *testing.T) {
	setup := func(t *testing.T) interfaces.GitRepository {
		remote := testutil.NewRemoteRepo(t, publishBranch, map[string]string{"index.json": "A"})
		repo := cloneForTest(t, remote)
		gt.NoError(t, os.WriteFile(filepath.Join(repo.Dir(), "index.json"), []byte("B"), 0644))
		gt.R1(repo.CommitAll(context.Background(), commitInput())).NoError(t)
		gt.NoError(t, os.RemoveAll(remote.Dir))
		return repo
	}

	t.Run("unreachable remote is a rejection with its cause", func(t *testing.T) {
		repo := setup(t)
		err := repo.ForcePush(context.Background(), publishBranch)
		gt.True(t, errors.Is(err, types.ErrPushRejected))
		gt.True(t, errors.Unwrap(err) != nil)
	})

	t.Run("cancelled push is not a rejection", func(t *testing.T) {
		repo := setup(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := repo.ForcePush(ctx, publishBranch)
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrPushRejected))
	})
}

func TestCloneInvalidInput(t *testing.T) {
	_, err := git.New().Clone(context.Background(), &interfaces.CloneInput{URL: "x"})
	gt.Error(t, err)
}

func TestCloneMissingBranch(t *testing.T) {
	remote := testutil.NewRemoteRepo(t, publishBranch, map[string]string{"index.json": "A"})
	_, err := git.New().Clone(context.Background(), &interfaces.CloneInput{
		URL:    remote.Dir,
		Branch: "no-such-branch",
		Dir:    t.TempDir() + "/dist",
		Depth:  1,
	})
	gt.Error(t, err)
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	empty, err := git.IsEmptyDir(dir)
	gt.NoError(t, err)
	gt.True(t, empty)

	empty, err = git.IsEmptyDir(filepath.Join(dir, "missing"))
	gt.NoError(t, err)
	gt.True(t, empty)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0644))
	empty, err = git.IsEmptyDir(dir)
	gt.NoError(t, err)
	gt.False(t, empty)
}
