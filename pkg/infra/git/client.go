package git

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Username sent with token based basic auth. GitHub ignores it for tokens.
const tokenUsername = "x-access-token"

type Client struct {
	tokenSource oauth2.TokenSource
}

var _ interfaces.GitClient = (*Client)(nil)

type Option func(*Client)

// WithTokenSource sets the token used for clone and push over HTTPS
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(x *Client) {
		x.tokenSource = ts
	}
}

func New(options ...Option) *Client {
	client := &Client{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) auth() (transport.AuthMethod, error) {
	if x.tokenSource == nil {
		return nil, nil
	}

	token, err := x.tokenSource.Token()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get git token")
	}

	return &githttp.BasicAuth{
		Username: tokenUsername,
		Password: token.AccessToken,
	}, nil
}

// Clone clones a single branch of the remote into input.Dir
func (x *Client) Clone(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
	if input.URL == "" || input.Branch == "" || input.Dir == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "url, branch and dir are required",
			goerr.V("url", input.URL),
			goerr.V("branch", input.Branch),
			goerr.V("dir", input.Dir),
		)
	}

	auth, err := x.auth()
	if err != nil {
		return nil, err
	}

	branch := strings.TrimPrefix(input.Branch.String(), "refs/heads/")
	logging.From(ctx).Info("cloning repository",
		slog.String("url", input.URL),
		slog.String("branch", branch),
		slog.String("dir", input.Dir),
		slog.Int("depth", input.Depth),
	)

	repo, err := git.PlainCloneContext(ctx, input.Dir, false, &git.CloneOptions{
		URL:           input.URL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         input.Depth,
		Tags:          git.NoTags,
		Auth:          auth,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clone repository",
			goerr.V("url", input.URL),
			goerr.V("branch", branch),
		)
	}

	return &Repository{client: x, repo: repo, dir: input.Dir}, nil
}

// Open opens an existing working copy such as the CI source checkout
func (x *Client) Open(ctx context.Context, dir string) (interfaces.GitRepository, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}
	return &Repository{client: x, repo: repo, dir: dir}, nil
}

// Repository is a go-git working copy
type Repository struct {
	client *Client
	repo   *git.Repository
	dir    string
}

var _ interfaces.GitRepository = (*Repository)(nil)

func (x *Repository) Dir() string {
	return x.dir
}

func (x *Repository) Head(ctx context.Context) (types.CommitSHA, error) {
	head, err := x.repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get HEAD", goerr.V("dir", x.dir))
	}
	return types.CommitSHA(head.Hash().String()), nil
}

func (x *Repository) IsClean(ctx context.Context) (bool, error) {
	wt, err := x.repo.Worktree()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree", goerr.V("dir", x.dir))
	}

	status, err := wt.Status()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", x.dir))
	}

	if !status.IsClean() {
		logging.From(ctx).Debug("worktree has changes", slog.Int("files", len(status)))
	}
	return status.IsClean(), nil
}

func (x *Repository) CommitAll(ctx context.Context, input *interfaces.CommitInput) (types.CommitSHA, error) {
	if input.Message == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "commit message is empty")
	}

	wt, err := x.repo.Worktree()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get worktree", goerr.V("dir", x.dir))
	}

	status, err := wt.Status()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", x.dir))
	}

	for path, st := range status {
		if st.Worktree == git.Deleted {
			if _, err := wt.Remove(path); err != nil {
				return "", goerr.Wrap(err, "failed to stage removed file", goerr.V("path", path))
			}
			continue
		}
		if st.Worktree == git.Unmodified {
			continue
		}
		if _, err := wt.Add(path); err != nil {
			return "", goerr.Wrap(err, "failed to stage file", goerr.V("path", path))
		}
	}

	hash, err := wt.Commit(input.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  input.AuthorName,
			Email: input.AuthorEmail,
			When:  input.When,
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to commit", goerr.V("dir", x.dir))
	}

	return types.CommitSHA(hash.String()), nil
}

func (x *Repository) ForcePush(ctx context.Context, branch types.BranchName) error {
	auth, err := x.client.auth()
	if err != nil {
		return err
	}

	ref := branch.Ref()
	refSpec := gitconfig.RefSpec("+" + ref + ":" + ref)
	logging.From(ctx).Info("force pushing", slog.String("refspec", refSpec.String()))

	if err := x.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Force:      true,
		Auth:       auth,
	}); err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			logging.From(ctx).Info("remote branch already up to date")
			return nil
		}
		if ctx.Err() != nil {
			return goerr.Wrap(err, "push cancelled", goerr.V("branch", branch))
		}
		return types.ErrPushRejected.Wrap(err, goerr.V("branch", branch))
	}

	return nil
}

// IsEmptyDir reports whether dir does not exist or has no entries
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, goerr.Wrap(err, "failed to read directory", goerr.V("dir", dir))
	}
	return len(entries) == 0, nil
}
