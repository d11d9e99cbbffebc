package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/reldash/pkg/cli/config"
	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

func cmdRender() *cli.Command {
	var (
		dashboardCfg config.Dashboard
		output       string
	)

	flags := append(dashboardCfg.Flags(), &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "HTML output file (stdout if empty)",
		Destination: &output,
		Sources:     cli.EnvVars("RELDASH_OUTPUT"),
	})

	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Render the dashboard page once as HTML",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dashboardUC, err := newDashboard(ctx, &dashboardCfg)
			if err != nil {
				return err
			}

			// Render fully before touching the output so a failed run leaves no file
			var buf bytes.Buffer
			if err := dashboardUC.Render(ctx, &buf); err != nil {
				return err
			}

			if output == "" {
				return writeOutput(os.Stdout, &buf)
			}

			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return goerr.Wrap(err, "failed to write dashboard", goerr.V("output", output))
			}

			logging.From(ctx).Info("Dashboard written",
				slog.String("output", output),
				slog.Int("bytes", buf.Len()),
			)
			return nil
		},
	}
}

func writeOutput(w io.Writer, buf *bytes.Buffer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
