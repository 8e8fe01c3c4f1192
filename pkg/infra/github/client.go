package github

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	"github.com/drifty-web/releasepage/pkg/domain/model"
	"github.com/drifty-web/releasepage/pkg/domain/types"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
}

type config struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option is a functional option for the GitHub client
type Option func(*config)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the outbound request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// NewClient creates an unauthenticated GitHub client for the public releases API
func NewClient(opts ...Option) interfaces.ReleaseClient {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		copied := *httpClient
		copied.Timeout = cfg.timeout
		httpClient = &copied
	}

	return &client{
		githubClient: github.NewClient(httpClient),
	}
}

// FetchReleases retrieves the release array in a single GET request. There is
// no retry; any failure is returned tagged by kind.
func (c *client) FetchReleases(ctx context.Context) (model.ReleaseList, error) {
	logger := ctxlog.From(ctx)

	// An absolute URL bypasses the client's BaseURL
	req, err := c.githubClient.NewRequest(http.MethodGet, types.ReleasesURL, nil)
	if err != nil {
		return model.ReleaseList{}, goerr.Wrap(err, "failed to create releases request",
			goerr.V("url", types.ReleasesURL))
	}

	// The pre-emptive rate limit check would answer later renders locally
	// after one rate-limited response; every render must reach GitHub.
	ctx = context.WithValue(ctx, github.BypassRateLimitCheck, true)

	// go-github copies the body verbatim into an io.Writer, so trailing data
	// after the first JSON value reaches ParseReleaseList
	var body bytes.Buffer
	resp, err := c.githubClient.Do(ctx, req, &body)
	if err != nil {
		return model.ReleaseList{}, classifyError(err, resp)
	}

	logger.Debug("Fetched releases",
		"url", types.ReleasesURL,
		"status", resp.StatusCode,
		"size_bytes", body.Len(),
		"rate_remaining", resp.Rate.Remaining,
	)

	list, err := model.ParseReleaseList(body.Bytes())
	if err != nil {
		return model.ReleaseList{}, goerr.Wrap(err, "failed to parse releases response",
			goerr.V("url", types.ReleasesURL))
	}

	return list, nil
}

// classifyError maps a go-github failure onto the network/status tags. go-github
// returns a response alongside the error whenever the server answered.
func classifyError(err error, resp *github.Response) error {
	if resp == nil || resp.Response == nil {
		return goerr.Wrap(err, "failed to reach GitHub releases API",
			goerr.Tag(types.ErrTagNetwork),
			goerr.V("url", types.ReleasesURL),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return goerr.Wrap(err, "GitHub releases API returned an error status",
			goerr.Tag(types.ErrTagUpstreamStatus),
			goerr.V("url", types.ReleasesURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	// 2xx with an error means the body could not be read to the end
	return goerr.Wrap(err, "failed to read releases response",
		goerr.Tag(types.ErrTagNetwork),
		goerr.V("url", types.ReleasesURL),
		goerr.V("status", resp.StatusCode),
	)
}
