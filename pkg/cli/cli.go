package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/reldash/pkg/cli/config"
	"github.com/m-mizutani/reldash/pkg/domain/types"
	"github.com/m-mizutani/reldash/pkg/utils/errs"
	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		flush     = func() {}
	)

	app := &cli.Command{
		Name:    "reldash",
		Usage:   "GitHub release dashboard",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)

			f, err := sentryCfg.Configure(ctx)
			if err != nil {
				return nil, err
			}
			flush = f

			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRender(),
			cmdSummary(),
		},
	}

	err := app.Run(ctx, args)
	if err != nil {
		errs.Handle(ctx, err)
	}
	flush()

	return err
}
