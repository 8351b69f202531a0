package github

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const (
	releasesPerPage = 100
	downloadTimeout = 30 * time.Second
)

// Client reads releases of package repositories through the GitHub REST API
type Client struct {
	tokenSource oauth2.TokenSource
	baseURL     string
	httpClient  *http.Client
}

var _ interfaces.ReleaseSource = (*Client)(nil)

type Option func(*Client)

// WithTokenSource authenticates API calls and asset downloads
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(x *Client) {
		x.tokenSource = ts
	}
}

// WithBaseURL replaces https://api.github.com/ (GitHub Enterprise or tests)
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying client. Token auth is layered on top of its transport.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(client)
	}

	if client.baseURL != "" {
		if !strings.HasSuffix(client.baseURL, "/") {
			client.baseURL += "/"
		}
		if _, err := url.Parse(client.baseURL); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL",
				goerr.V("baseURL", client.baseURL),
				goerr.V("cause", err.Error()),
			)
		}
	}

	return client, nil
}

// NewTokenSource returns a token source for a static personal access token
func NewTokenSource(token types.GitHubToken) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: string(token),
		TokenType:   "token",
	})
}

func (x *Client) authedHTTPClient(ctx context.Context) *http.Client {
	if x.tokenSource == nil {
		return x.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	return oauth2.NewClient(ctx, x.tokenSource)
}

func (x *Client) githubClient(ctx context.Context) *github.Client {
	client := github.NewClient(x.authedHTTPClient(ctx))
	if x.baseURL != "" {
		// validated in New
		u, _ := url.Parse(x.baseURL)
		client.BaseURL = u
	}
	return client
}

// ListReleases returns the first page (100 entries) of releases, newest first
func (x *Client) ListReleases(ctx context.Context, owner, repo string) ([]*model.Release, error) {
	client := x.githubClient(ctx)

	releases, resp, err := client.Repositories.ListReleases(ctx, owner, repo, &github.ListOptions{PerPage: releasesPerPage})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list releases",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	if resp != nil && resp.NextPage != 0 {
		logging.From(ctx).Warn("only the first page of releases is processed",
			slog.String("repo", owner+"/"+repo),
		)
	}

	var results []*model.Release
	for _, release := range releases {
		r := &model.Release{
			TagName:     release.GetTagName(),
			PublishedAt: release.GetPublishedAt().Time,
		}
		for _, asset := range release.Assets {
			r.Assets = append(r.Assets, model.Asset{
				Name:               asset.GetName(),
				BrowserDownloadURL: asset.GetBrowserDownloadURL(),
			})
		}
		results = append(results, r)
	}

	model.SortReleasesNewestFirst(results)
	return results, nil
}

// DownloadAsset fetches a release asset following redirects. Credentials are
// sent only to the asset URL host.
func (x *Client) DownloadAsset(ctx context.Context, assetURL string, w io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create asset request", goerr.V("url", assetURL))
	}

	if x.tokenSource != nil {
		token, err := x.tokenSource.Token()
		if err != nil {
			return goerr.Wrap(err, "failed to get token for asset download")
		}
		token.SetAuthHeader(req)
	}

	client := *x.httpClient
	client.CheckRedirect = keepAuthOnSameHost

	resp, err := client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download asset", goerr.V("url", assetURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("unexpected status of asset download",
			goerr.V("url", assetURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read asset body", goerr.V("url", assetURL))
	}

	logging.From(ctx).Debug("downloaded asset", slog.String("url", assetURL), slog.Int64("size", n))
	return nil
}

const maxRedirects = 10

// keepAuthOnSameHost drops the Authorization header once a redirect leaves
// the host (including port) of the first request. Release assets redirect to
// a separate object storage host.
func keepAuthOnSameHost(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return goerr.New("too many redirects", goerr.V("url", req.URL.String()))
	}
	if req.URL.Host != via[0].URL.Host {
		req.Header.Del("Authorization")
	}
	return nil
}
