package github_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/types"
	githubinfra "github.com/drifty-web/releasepage/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// recordingTransport answers every request with a canned response and keeps
// the requests it has seen
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	header   http.Header
	body     string
	err      error
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.requests = append(rt.requests, req)
	rt.mu.Unlock()

	if rt.err != nil {
		return nil, rt.err
	}

	header := http.Header{"Content-Type": []string{"application/json"}}
	for key, values := range rt.header {
		header[key] = values
	}

	return &http.Response{
		StatusCode: rt.status,
		Status:     http.StatusText(rt.status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Request:    req,
	}, nil
}

func isNetwork(err error) bool        { return goerr.HasTag(err, types.ErrTagNetwork) }
func isUpstreamStatus(err error) bool { return goerr.HasTag(err, types.ErrTagUpstreamStatus) }
func isParse(err error) bool          { return goerr.HasTag(err, types.ErrTagParse) }

func TestClient_FetchReleases_Success(t *testing.T) {
	body := `[{"id":1,"tag_name":"v2.0.0","name":"Drifty v2.0.0"},{"id":2,"tag_name":"v1.9.0","assets":[]}]`
	rt := &recordingTransport{status: http.StatusOK, body: body}
	client := githubinfra.NewClient(githubinfra.WithHTTPClient(&http.Client{Transport: rt}))

	list, err := client.FetchReleases(context.Background())
	gt.NoError(t, err)

	gt.Equal(t, list.Len(), 2)
	gt.Equal(t, string(list.Raw()), body)
	gt.Equal(t, string(list.Records()[0]), `{"id":1,"tag_name":"v2.0.0","name":"Drifty v2.0.0"}`)
	gt.Equal(t, string(list.Records()[1]), `{"id":2,"tag_name":"v1.9.0","assets":[]}`)
}

func TestClient_FetchReleases_RequestTarget(t *testing.T) {
	rt := &recordingTransport{status: http.StatusOK, body: `[]`}
	client := githubinfra.NewClient(githubinfra.WithHTTPClient(&http.Client{Transport: rt}))

	for i := 0; i < 3; i++ {
		_, err := client.FetchReleases(context.Background())
		gt.NoError(t, err)
	}

	gt.Equal(t, len(rt.requests), 3)
	for _, req := range rt.requests {
		gt.Equal(t, req.Method, http.MethodGet)
		gt.Equal(t, req.URL.String(), types.ReleasesURL)
		gt.Equal(t, req.URL.RawQuery, "")
		gt.Equal(t, req.Header.Get("Authorization"), "")
	}
}

func TestClient_FetchReleases_Failures(t *testing.T) {
	tests := []struct {
		name  string
		rt    *recordingTransport
		check func(error) bool
	}{
		{
			name:  "Network failure",
			rt:    &recordingTransport{err: errors.New("connection refused")},
			check: isNetwork,
		},
		{
			name:  "Not found",
			rt:    &recordingTransport{status: http.StatusNotFound, body: `{"message":"Not Found"}`},
			check: isUpstreamStatus,
		},
		{
			name:  "Server error",
			rt:    &recordingTransport{status: http.StatusBadGateway, body: `oops`},
			check: isUpstreamStatus,
		},
		{
			name:  "Malformed JSON",
			rt:    &recordingTransport{status: http.StatusOK, body: `<html>not json</html>`},
			check: isParse,
		},
		{
			name:  "Truncated JSON",
			rt:    &recordingTransport{status: http.StatusOK, body: `[{"id":1},`},
			check: isParse,
		},
		{
			name:  "JSON object instead of array",
			rt:    &recordingTransport{status: http.StatusOK, body: `{"id":1}`},
			check: isParse,
		},
		{
			name:  "Trailing data",
			rt:    &recordingTransport{status: http.StatusOK, body: `[{"id":1}] this is not json`},
			check: isParse,
		},
		{
			name:  "Empty body",
			rt:    &recordingTransport{status: http.StatusOK, body: ``},
			check: isParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := githubinfra.NewClient(githubinfra.WithHTTPClient(&http.Client{Transport: tt.rt}))

			list, err := client.FetchReleases(context.Background())
			gt.Error(t, err)
			gt.True(t, tt.check(err))
			gt.Equal(t, list.Len(), 0)
		})
	}
}

func TestClient_FetchReleases_AfterRateLimit(t *testing.T) {
	reset := time.Now().Add(time.Hour).Unix()
	rt := &recordingTransport{
		status: http.StatusForbidden,
		header: http.Header{
			"X-Ratelimit-Limit":     []string{"60"},
			"X-Ratelimit-Remaining": []string{"0"},
			"X-Ratelimit-Reset":     []string{strconv.FormatInt(reset, 10)},
		},
		body: `{"message":"API rate limit exceeded for 203.0.113.1."}`,
	}
	client := githubinfra.NewClient(githubinfra.WithHTTPClient(&http.Client{Transport: rt}))

	for i := 1; i <= 3; i++ {
		_, err := client.FetchReleases(context.Background())
		gt.Error(t, err)
		gt.True(t, isUpstreamStatus(err))
		gt.Equal(t, len(rt.requests), i)
	}
}

func TestClient_FetchReleases_NullBody(t *testing.T) {
	rt := &recordingTransport{status: http.StatusOK, body: `null`}
	client := githubinfra.NewClient(githubinfra.WithHTTPClient(&http.Client{Transport: rt}))

	list, err := client.FetchReleases(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, list.Len(), 0)
}

func TestClient_FetchReleases_WithRealAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping call to the public GitHub API in short mode")
	}
	if !strings.EqualFold(os.Getenv("TEST_GITHUB_LIVE"), "true") {
		t.Skip("TEST_GITHUB_LIVE is not set")
	}

	client := githubinfra.NewClient()
	list, err := client.FetchReleases(context.Background())
	gt.NoError(t, err)
	gt.Number(t, list.Len()).Greater(0)
}
