package errutil

import (
	"context"
	"log/slog"

	"github.com/drifty-web/releasepage/pkg/utils/async"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err and, when Sentry is configured, reports it asynchronously.
// attrs are added both to the log record and to the Sentry event.
func Handle(ctx context.Context, err error, attrs ...slog.Attr) {
	if err == nil {
		return
	}

	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.Any("error", err))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	ctxlog.From(ctx).Error(err.Error(), args...)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub = hub.Clone()

	async.Dispatch(ctx, func(ctx context.Context) error {
		hub.WithScope(func(scope *sentry.Scope) {
			errCtx := sentry.Context{}
			if goErr := goerr.Unwrap(err); goErr != nil {
				for k, v := range goErr.Values() {
					errCtx[k] = v
				}
			}
			for _, attr := range attrs {
				errCtx[attr.Key] = attr.Value.Any()
			}
			scope.SetContext("error", errCtx)
			hub.CaptureException(err)
		})
		return nil
	})
}
