package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/drifty-web/releasepage/pkg/domain/interfaces"
	"github.com/drifty-web/releasepage/pkg/domain/model"
	"github.com/drifty-web/releasepage/pkg/utils/errutil"
	"github.com/drifty-web/releasepage/pkg/view"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DownloadHandler serves the download page
type DownloadHandler struct {
	pageUC   interfaces.DownloadPageUseCase
	renderer *view.Renderer
}

// NewDownloadHandler creates a new DownloadHandler
func NewDownloadHandler(pageUC interfaces.DownloadPageUseCase, renderer *view.Renderer) *DownloadHandler {
	return &DownloadHandler{
		pageUC:   pageUC,
		renderer: renderer,
	}
}

// Handle renders the page on every request. The revalidation hint is
// exposed to downstream caches as Cache-Control; nothing is cached here.
func (h *DownloadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	page, err := h.pageUC.Render(ctx)
	if err != nil {
		h.writeErrorPage(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.writeErrorPage(w, r, goerr.Wrap(err, "failed to render download page"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl(page))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write download page", "error", err)
	}
}

// writeErrorPage reports err and answers 502 with an HTML error page whose
// reference id matches the logged error
func (h *DownloadHandler) writeErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	refID := uuid.NewString()

	errutil.Handle(ctx, err, slog.String("reference_id", refID))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusBadGateway)

	if err := h.renderer.RenderError(w, view.ErrorPage{
		Metadata:    model.DownloadPageMetadata(),
		Title:       "Releases unavailable",
		ReferenceID: refID,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to render error page", "error", err)
	}
}

func cacheControl(page *model.Page) string {
	seconds := int64(page.Revalidate.Seconds())
	if seconds <= 0 {
		return "no-cache"
	}
	return fmt.Sprintf("public, max-age=%d", seconds)
}
