// Package errs reports errors that terminate a run.
package errs

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

// Handle logs err and sends it to Sentry when a client has been initialized
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logging.From(ctx).Error("Run failed", slog.Any("error", err))

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	if id := hub.CaptureException(err); id != nil {
		logging.From(ctx).Info("Error reported to Sentry", slog.String("event_id", string(*id)))
	}
}
