package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectRemoteURL returns the origin URL of the git checkout in dir as an
// HTTPS URL, so that token authentication can be used for pushing.
func DetectRemoteURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}
	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	url := remote.Config().URLs[0]
	if owner, repoName, err := ParseGitHubRemote(url); err == nil {
		return "https://github.com/" + owner + "/" + repoName + ".git", nil
	}
	return url, nil
}

// ParseGitHubRemote extracts owner and repository name from a GitHub remote
// URL (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git)
func ParseGitHubRemote(url string) (string, string, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = strings.SplitN(url, "github.com/", 2)[1]
	default:
		return "", "", goerr.New("not a GitHub remote URL", goerr.V("url", url))
	}

	ownerRepo := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return ownerRepo[0], ownerRepo[1], nil
}
