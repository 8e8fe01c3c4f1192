package view

import (
	"encoding/json"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/model"
	"github.com/drifty-web/releasepage/pkg/domain/types"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

type releaseView struct {
	Name        string
	TagName     string
	URL         string
	Body        string
	Prerelease  bool
	PublishedAt time.Time
	Assets      []assetView
}

type assetView struct {
	Name          string
	URL           string
	Size          int
	DownloadCount int
}

// toReleaseViews decodes each raw record through go-github's release type.
// Fields the API omits are left at their zero value.
func toReleaseViews(list *model.ReleaseList) ([]releaseView, error) {
	views := make([]releaseView, 0, list.Len())

	for i, record := range list.Records() {
		var release github.RepositoryRelease
		if err := json.Unmarshal(record, &release); err != nil {
			return nil, goerr.Wrap(err, "release record is not an object",
				goerr.Tag(types.ErrTagParse),
				goerr.V("index", i),
			)
		}

		view := releaseView{
			Name:        release.GetName(),
			TagName:     release.GetTagName(),
			URL:         release.GetHTMLURL(),
			Body:        release.GetBody(),
			Prerelease:  release.GetPrerelease(),
			PublishedAt: release.GetPublishedAt().Time,
		}
		if view.Name == "" {
			view.Name = view.TagName
		}

		for _, asset := range release.Assets {
			view.Assets = append(view.Assets, assetView{
				Name:          asset.GetName(),
				URL:           asset.GetBrowserDownloadURL(),
				Size:          asset.GetSize(),
				DownloadCount: asset.GetDownloadCount(),
			})
		}

		views = append(views, view)
	}

	return views, nil
}
