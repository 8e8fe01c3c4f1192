package usecase

import (
	"context"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	"github.com/drifty-web/releasepage/pkg/domain/model"
	"github.com/drifty-web/releasepage/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type downloadPage struct {
	releaseClient interfaces.ReleaseClient
	revalidate    time.Duration
}

// DownloadPageOption is a functional option for the download page use case
type DownloadPageOption func(*downloadPage)

// WithRevalidate overrides the freshness hint attached to loaded releases
func WithRevalidate(d time.Duration) DownloadPageOption {
	return func(uc *downloadPage) {
		uc.revalidate = d
	}
}

// NewDownloadPage creates a new instance of DownloadPageUseCase
func NewDownloadPage(releaseClient interfaces.ReleaseClient, opts ...DownloadPageOption) interfaces.DownloadPageUseCase {
	uc := &downloadPage{
		releaseClient: releaseClient,
		revalidate:    types.DefaultRevalidate,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Load fetches the release list. Failures are returned as is; there is no
// retry and no fallback data.
func (uc *downloadPage) Load(ctx context.Context) (*model.LoadResult, error) {
	releases, err := uc.releaseClient.FetchReleases(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load releases")
	}

	return &model.LoadResult{
		Releases:   releases,
		Revalidate: uc.revalidate,
	}, nil
}

// Render loads the releases and composes header, release list and footer
func (uc *downloadPage) Render(ctx context.Context) (*model.Page, error) {
	logger := ctxlog.From(ctx)

	result, err := uc.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render download page")
	}

	logger.Debug("Composing download page",
		"release_count", result.Releases.Len(),
		"revalidate", result.Revalidate,
	)

	return &model.Page{
		Metadata: model.DownloadPageMetadata(),
		Sections: []model.Section{
			{Kind: model.SectionHeader, Class: "bg-top"},
			{Kind: model.SectionReleases, Class: "bg-about", Releases: &result.Releases},
			{Kind: model.SectionFooter},
		},
		Revalidate: result.Revalidate,
	}, nil
}
