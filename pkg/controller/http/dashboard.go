package http

import (
	"bytes"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
	"github.com/m-mizutani/reldash/pkg/utils/errs"
)

// DashboardHandler serves the dashboard page and its JSON API. Every request
// is a complete pipeline run.
type DashboardHandler struct {
	dashboardUC interfaces.DashboardUseCase
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardUC interfaces.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// Page renders the HTML dashboard
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var buf bytes.Buffer
	if err := h.dashboardUC.Render(ctx, &buf); err != nil {
		errs.Handle(ctx, err)
		writeError(ctx, w, goerr.Wrap(err, "failed to render dashboard"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to write dashboard response"))
	}
}

// Releases returns the derived release records
func (h *DashboardHandler) Releases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.dashboardUC.Load(ctx)
	if err != nil {
		errs.Handle(ctx, err)
		writeError(ctx, w, goerr.Wrap(err, "failed to load releases"), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, records, http.StatusOK)
}

// Summary returns the three aggregations
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.dashboardUC.Summarize(ctx)
	if err != nil {
		errs.Handle(ctx, err)
		writeError(ctx, w, goerr.Wrap(err, "failed to summarize releases"), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, summary, http.StatusOK)
}

// Stats returns weekday release counts per repository and period
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.dashboardUC.Stats(ctx)
	if err != nil {
		errs.Handle(ctx, err)
		writeError(ctx, w, goerr.Wrap(err, "failed to build release stats"), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, stats, http.StatusOK)
}
