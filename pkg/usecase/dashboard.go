package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/infra/csvfile"
	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

// DefaultDataPath is where the release export script writes its CSV
const DefaultDataPath = "scripts/release_raw.csv"

type dashboardConfig struct {
	location  string
	columns   model.Columns
	topN      int
	presenter interfaces.Presenter
}

// DashboardOption is a functional option for the dashboard use case
type DashboardOption func(*dashboardConfig)

// WithLocation sets the CSV location, a local path or gs://bucket/object
func WithLocation(location string) DashboardOption {
	return func(c *dashboardConfig) {
		c.location = location
	}
}

// WithColumns sets the CSV header names. Empty names keep the defaults.
func WithColumns(columns model.Columns) DashboardOption {
	return func(c *dashboardConfig) {
		c.columns = columns.Merge(model.DefaultColumns())
	}
}

// WithTopModules sets how many modules the module ranking keeps
func WithTopModules(n int) DashboardOption {
	return func(c *dashboardConfig) {
		c.topN = n
	}
}

// WithPresenter sets the page renderer used by Render
func WithPresenter(p interfaces.Presenter) DashboardOption {
	return func(c *dashboardConfig) {
		c.presenter = p
	}
}

type dashboardUseCase struct {
	opener interfaces.SourceOpener
	cfg    dashboardConfig
}

// NewDashboard creates a new instance of DashboardUseCase
func NewDashboard(opener interfaces.SourceOpener, opts ...DashboardOption) interfaces.DashboardUseCase {
	cfg := dashboardConfig{
		location: DefaultDataPath,
		columns:  model.DefaultColumns(),
		topN:     DefaultTopModules,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &dashboardUseCase{
		opener: opener,
		cfg:    cfg,
	}
}

// Load reads and derives the release records
func (uc *dashboardUseCase) Load(ctx context.Context) ([]model.ReleaseRecord, error) {
	logger := logging.From(ctx)

	r, err := uc.opener.Open(ctx, uc.cfg.location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn("Failed to close release CSV", "error", err, "location", uc.cfg.location)
		}
	}()

	table, err := csvfile.Load(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load release CSV", goerr.V("location", uc.cfg.location))
	}

	records, err := Derive(table, uc.cfg.columns)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to derive release records", goerr.V("location", uc.cfg.location))
	}

	logger.Debug("Loaded release records",
		"location", uc.cfg.location,
		"rows", table.Len(),
		"records", len(records),
	)
	return records, nil
}

// Summarize loads the records and aggregates them
func (uc *dashboardUseCase) Summarize(ctx context.Context) (*model.Summary, error) {
	runID := uuid.NewString()
	logger := logging.From(ctx).With(slog.String("run_id", runID))
	ctx = logging.With(ctx, logger)
	start := time.Now()

	records, err := uc.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "dashboard run aborted", goerr.V("run_id", runID))
	}

	summary := Summarize(records, uc.cfg.topN)

	logger.Info("Summarized releases",
		"total", summary.Total,
		"months", len(summary.MonthlyTrend),
		"modules", len(summary.TopModules),
		"authors", len(summary.AuthorShare),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

// Stats loads the records and counts weekday releases per period
func (uc *dashboardUseCase) Stats(ctx context.Context) ([]model.StatRow, error) {
	records, err := uc.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build release stats")
	}

	stats := ReleaseStats(records)
	logging.From(ctx).Info("Built release stats",
		"records", len(records),
		"rows", len(stats),
	)
	return stats, nil
}

// Render summarizes and writes the dashboard page. Nothing is written to w
// when any step fails.
func (uc *dashboardUseCase) Render(ctx context.Context, w io.Writer) error {
	if uc.cfg.presenter == nil {
		return goerr.New("dashboard presenter is not configured")
	}

	summary, err := uc.Summarize(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := uc.cfg.presenter.Render(&buf, summary); err != nil {
		return goerr.Wrap(err, "failed to render dashboard")
	}

	if _, err := buf.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write dashboard")
	}
	return nil
}
