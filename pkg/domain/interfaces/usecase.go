package interfaces

import (
	"context"

	"github.com/drifty-web/releasepage/pkg/domain/model"
)

// DownloadPageUseCase defines the data loading and composition of the download page
type DownloadPageUseCase interface {
	// Load fetches the release list and attaches the revalidation hint
	Load(ctx context.Context) (*model.LoadResult, error)

	// Render loads the release list and composes the page sections
	Render(ctx context.Context) (*model.Page, error)
}
