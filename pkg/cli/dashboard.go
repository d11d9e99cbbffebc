package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/reldash/pkg/cli/config"
	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
	"github.com/m-mizutani/reldash/pkg/infra/source"
	"github.com/m-mizutani/reldash/pkg/presenter/echarts"
	"github.com/m-mizutani/reldash/pkg/usecase"
	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

// newDashboard builds the dashboard use case from the data flags
func newDashboard(ctx context.Context, cfg *config.Dashboard) (interfaces.DashboardUseCase, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Dashboard configured", slog.Any("dashboard", settings))

	return usecase.NewDashboard(
		source.NewOpener(),
		usecase.WithLocation(settings.Location),
		usecase.WithColumns(settings.Columns),
		usecase.WithTopModules(settings.Top),
		usecase.WithPresenter(echarts.New(echarts.WithTitle(settings.Title))),
	), nil
}
