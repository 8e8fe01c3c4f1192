package interfaces

import (
	"context"

	"github.com/drifty-web/releasepage/pkg/domain/model"
)

// ReleaseClient defines operations for reading releases from GitHub
type ReleaseClient interface {
	// FetchReleases retrieves the Drifty release list as returned by the API
	FetchReleases(ctx context.Context) (model.ReleaseList, error)
}
