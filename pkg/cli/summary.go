package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/reldash/pkg/cli/config"
	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/domain/types"
	"github.com/m-mizutani/reldash/pkg/presenter/echarts"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

func cmdSummary() *cli.Command {
	var (
		dashboardCfg config.Dashboard
		format       string
	)

	flags := append(dashboardCfg.Flags(), &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "Output format (text, json, csv)",
		Value:       formatText,
		Destination: &format,
		Sources:     cli.EnvVars("RELDASH_FORMAT"),
	})

	return &cli.Command{
		Name:  "summary",
		Usage: "Print the monthly trend, top modules and author share",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dashboardUC, err := newDashboard(ctx, &dashboardCfg)
			if err != nil {
				return err
			}

			summary, err := dashboardUC.Summarize(ctx)
			if err != nil {
				return err
			}

			return writeSummary(os.Stdout, summary, format)
		},
	}
}

func writeSummary(w io.Writer, summary *model.Summary, format string) error {
	switch format {
	case formatText:
		return writeSummaryText(w, summary)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return goerr.Wrap(err, "failed to encode summary")
		}
		return nil
	case formatCSV:
		return writeSummaryCSV(w, summary)
	default:
		return goerr.New("unsupported summary format",
			goerr.T(types.ErrTagConfig), goerr.V("format", format))
	}
}

func writeSummaryText(w io.Writer, summary *model.Summary) error {
	heading := color.New(color.FgCyan, color.Bold)
	count := color.New(color.FgYellow)

	var lines []string
	section := func(title string) {
		lines = append(lines, heading.Sprint(title))
	}
	row := func(n int, cols ...string) {
		lines = append(lines, "  "+strings.Join(cols, "\t")+"\t"+count.Sprint(n))
	}

	lines = append(lines, heading.Sprintf("Releases: %d", summary.Total), "")

	section(echarts.MonthlyTrendTitle)
	for _, m := range summary.MonthlyTrend {
		row(m.Count, m.Repository, m.YearMonth)
	}
	lines = append(lines, "")

	section(echarts.TopModulesTitle(summary.TopN))
	for _, m := range summary.TopModules {
		row(m.Count, m.Module)
	}
	lines = append(lines, "")

	section(echarts.AuthorShareTitle)
	for _, a := range summary.AuthorShare {
		row(a.Count, a.Author, share(a.Count, summary.Total))
	}

	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

// writeSummaryCSV writes the three aggregations as one long table:
// chart,key,sub_key,count
func writeSummaryCSV(w io.Writer, summary *model.Summary) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{"chart", "key", "sub_key", "count"}}
	for _, m := range summary.MonthlyTrend {
		rows = append(rows, []string{"monthly_trend", m.Repository, m.YearMonth, strconv.Itoa(m.Count)})
	}
	for _, m := range summary.TopModules {
		rows = append(rows, []string{"top_modules", m.Module, "", strconv.Itoa(m.Count)})
	}
	for _, a := range summary.AuthorShare {
		rows = append(rows, []string{"author_share", a.Author, "", strconv.Itoa(a.Count)})
	}

	if err := cw.WriteAll(rows); err != nil {
		return goerr.Wrap(err, "failed to write summary CSV")
	}
	return nil
}
