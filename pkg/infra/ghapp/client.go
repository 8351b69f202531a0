package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

// Client authenticates as a GitHub App to mint installation tokens for the
// published repository
type Client struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	baseURL string
}

type Option func(*Client)

// WithBaseURL points the client to another GitHub API endpoint, e.g. GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:   appID,
		pem:     pem,
		baseURL: defaultBaseURL,
	}
	for _, opt := range options {
		opt(client)
	}
	if _, err := url.Parse(client.baseURL); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("baseURL", client.baseURL))
	}

	return client, nil
}

// TokenSource returns a source of short-lived installation access tokens.
// They are used as the password of git HTTPS auth and as the PAT handed to
// the index generator.
func (x *Client) TokenSource(ctx context.Context, installID types.GitHubAppInstallID) (oauth2.TokenSource, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", installID),
		)
	}
	itr.BaseURL = x.baseURL

	// Tokens are valid for an hour; reuse until shortly before expiry.
	return oauth2.ReuseTokenSource(nil, &installationTokenSource{ctx: ctx, itr: itr, installID: installID}), nil
}

type installationTokenSource struct {
	ctx       context.Context
	itr       *ghinstallation.Transport
	installID types.GitHubAppInstallID
}

func (x *installationTokenSource) Token() (*oauth2.Token, error) {
	token, err := x.itr.Token(x.ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation token", goerr.V("installID", x.installID))
	}

	expiry, _, err := x.itr.Expiry()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation token expiry", goerr.V("installID", x.installID))
	}

	logging.From(x.ctx).Debug("issued installation token",
		slog.Any("installID", x.installID),
		slog.Time("expiry", expiry),
	)

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "token",
		Expiry:      expiry,
	}, nil
}

func (x *Client) appClient() (*github.Client, error) {
	atr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport", goerr.V("appID", x.appID))
	}
	atr.BaseURL = x.baseURL

	client := github.NewClient(&http.Client{Transport: atr})
	// validated in New
	u, _ := url.Parse(x.baseURL + "/")
	client.BaseURL = u
	return client, nil
}

// FindInstallation returns the installation of the App that covers
// owner/repo. When repo is empty, or the repository lookup fails with 404,
// the organization and then the user installation of owner is used.
func (x *Client) FindInstallation(ctx context.Context, owner, repo string) (types.GitHubAppInstallID, error) {
	client, err := x.appClient()
	if err != nil {
		return 0, err
	}
	logger := logging.From(ctx).With(slog.String("owner", owner), slog.String("repo", repo))

	if repo != "" {
		inst, resp, err := client.Apps.FindRepositoryInstallation(ctx, owner, repo)
		if err == nil {
			logger.Info("found repository installation", slog.Int64("installID", inst.GetID()))
			return types.GitHubAppInstallID(inst.GetID()), nil
		}
		if !isNotFound(resp) {
			return 0, goerr.Wrap(err, "failed to find repository installation", goerr.V("owner", owner), goerr.V("repo", repo))
		}
	}

	inst, resp, err := client.Apps.FindOrganizationInstallation(ctx, owner)
	if err == nil {
		logger.Info("found organization installation", slog.Int64("installID", inst.GetID()))
		return types.GitHubAppInstallID(inst.GetID()), nil
	}
	if !isNotFound(resp) {
		return 0, goerr.Wrap(err, "failed to find organization installation", goerr.V("owner", owner))
	}

	inst, resp, err = client.Apps.FindUserInstallation(ctx, owner)
	if err == nil {
		logger.Info("found user installation", slog.Int64("installID", inst.GetID()))
		return types.GitHubAppInstallID(inst.GetID()), nil
	}
	if isNotFound(resp) {
		return 0, goerr.Wrap(types.ErrNotFound, "GitHub App is not installed for owner", goerr.V("owner", owner))
	}
	return 0, goerr.Wrap(err, "failed to find user installation", goerr.V("owner", owner))
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}
