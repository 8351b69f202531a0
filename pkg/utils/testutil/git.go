package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RemoteRepo is a bare repository on the local filesystem standing in for a
// hosted remote
type RemoteRepo struct {
	Dir string
}

// NewRemoteRepo creates a bare repository whose branch has one commit with
// the given files
func NewRemoteRepo(t *testing.T, branch string, files map[string]string) *RemoteRepo {
	t.Helper()

	remoteDir := filepath.Join(t.TempDir(), "remote.git")
	if _, err := git.PlainInit(remoteDir, true); err != nil {
		t.Fatalf("failed to init bare repository: %v", err)
	}

	seedDir := t.TempDir()
	seed, err := git.PlainInit(seedDir, false)
	if err != nil {
		t.Fatalf("failed to init seed repository: %v", err)
	}
	if _, err := seed.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{remoteDir}}); err != nil {
		t.Fatalf("failed to add remote: %v", err)
	}

	wt, err := seed.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(seedDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("failed to add file: %v", err)
		}
	}

	if _, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "seed", Email: "seed@example.com", When: time.Now()},
	}); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	head, err := seed.Head()
	if err != nil {
		t.Fatalf("failed to get head: %v", err)
	}
	refSpec := gitconfig.RefSpec(head.Name().String() + ":" + plumbing.NewBranchReferenceName(branch).String())
	if err := seed.Push(&git.PushOptions{RemoteName: "origin", RefSpecs: []gitconfig.RefSpec{refSpec}}); err != nil {
		t.Fatalf("failed to push seed commit: %v", err)
	}

	return &RemoteRepo{Dir: remoteDir}
}

// Tip returns the commit at the head of the branch
func (x *RemoteRepo) Tip(t *testing.T, branch string) *object.Commit {
	t.Helper()

	repo, err := git.PlainOpen(x.Dir)
	if err != nil {
		t.Fatalf("failed to open remote: %v", err)
	}
	ref, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		t.Fatalf("failed to resolve branch %s: %v", branch, err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		t.Fatalf("failed to get commit: %v", err)
	}
	return commit
}

// ReadFile returns the content of a file at the tip of the branch
func (x *RemoteRepo) ReadFile(t *testing.T, branch, name string) string {
	t.Helper()

	file, err := x.Tip(t, branch).File(name)
	if err != nil {
		t.Fatalf("failed to find %s: %v", name, err)
	}
	content, err := file.Contents()
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return content
}

// HasFile reports whether the file exists at the tip of the branch
func (x *RemoteRepo) HasFile(t *testing.T, branch, name string) bool {
	t.Helper()
	_, err := x.Tip(t, branch).File(name)
	return err == nil
}
