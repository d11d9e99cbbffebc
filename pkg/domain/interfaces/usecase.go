package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/reldash/pkg/domain/model"
)

// DashboardUseCase runs the release dashboard pipeline. Every call is a
// complete run starting from the CSV source.
type DashboardUseCase interface {
	// Load reads the CSV source and derives one record per row
	Load(ctx context.Context) ([]model.ReleaseRecord, error)

	// Summarize loads the records and computes the three aggregations
	Summarize(ctx context.Context) (*model.Summary, error)

	// Stats loads the records and counts weekday releases per repository in
	// yearly, monthly, weekly and daily buckets
	Stats(ctx context.Context) ([]model.StatRow, error)

	// Render summarizes and writes the dashboard page to w
	Render(ctx context.Context, w io.Writer) error
}

// Presenter renders a summary as a dashboard page
type Presenter interface {
	Render(w io.Writer, summary *model.Summary) error
}
