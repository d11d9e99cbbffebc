// Package echarts renders a release summary as an HTML page of ECharts charts.
package echarts

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
	"github.com/m-mizutani/reldash/pkg/domain/model"
)

// DefaultTitle is the page title of the dashboard
const DefaultTitle = "📊 GitHub 릴리즈 대시보드"

// config holds presenter configuration
type config struct {
	title string
}

// Option is a functional option for the presenter
type Option func(*config)

// WithTitle sets the page title
func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

type presenter struct {
	cfg config
}

// New creates a presenter writing one page with a line, a bar and a pie chart
func New(opts ...Option) interfaces.Presenter {
	cfg := config{title: DefaultTitle}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &presenter{cfg: cfg}
}

// Render writes the dashboard page for summary to w
func (p *presenter) Render(w io.Writer, summary *model.Summary) error {
	if summary == nil {
		return goerr.New("summary is required")
	}

	page := components.NewPage()
	page.PageTitle = p.cfg.title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		monthlyTrendChart(summary.MonthlyTrend),
		topModulesChart(summary.TopModules, summary.TopN),
		authorShareChart(summary.AuthorShare),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return goerr.Wrap(err, "failed to render chart page")
	}

	if _, err := w.Write(withHeading(buf.Bytes(), p.cfg.title)); err != nil {
		return goerr.Wrap(err, "failed to write chart page")
	}
	return nil
}

// withHeading puts the page title as a visible heading at the top of the body
func withHeading(page []byte, title string) []byte {
	heading := `<body>
<h1 class="reldash-title" style="text-align:center;font-family:sans-serif">` + html.EscapeString(title) + `</h1>`
	return bytes.Replace(page, []byte("<body>"), []byte(heading), 1)
}

// label makes a CSV value safe to embed in the chart options. go-echarts
// writes the options into a <script> block without HTML escaping.
func label(s string) string {
	return html.EscapeString(s)
}

// TopModulesTitle is the subheader of the module ranking chart
func TopModulesTitle(n int) string {
	if n <= 0 {
		return "2. 릴리즈 상위 모듈"
	}
	return fmt.Sprintf("2. 릴리즈 상위 모듈 (Top %d)", n)
}

// Subheaders of the trend and author charts
const (
	MonthlyTrendTitle = "1. 월별 릴리즈 추이"
	AuthorShareTitle  = "3. 작성자별 릴리즈 비율"
)

func monthlyTrendChart(trend []model.MonthlyCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: MonthlyTrendTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year_month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	months, series := TrendSeries(trend)
	line.SetXAxis(months)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Counts))
		for i, n := range s.Counts {
			data[i] = opts.LineData{Value: n}
		}
		line.AddSeries(label(s.Repository), data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}),
		)
	}
	return line
}

func topModulesChart(modules []model.ModuleCount, n int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TopModulesTitle(n)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "module"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	names := make([]string, len(modules))
	data := make([]opts.BarData, len(modules))
	for i, m := range modules {
		names[i] = label(m.Module)
		data[i] = opts.BarData{Value: m.Count}
	}

	bar.SetXAxis(names).AddSeries("count", data)
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Position: "top"}))
	return bar
}

func authorShareChart(authors []model.AuthorCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: AuthorShareTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
	)

	data := make([]opts.PieData, len(authors))
	for i, a := range authors {
		data[i] = opts.PieData{Name: label(a.Author), Value: a.Count}
	}
	pie.AddSeries("author", data)
	return pie
}

// RepositorySeries is the monthly release counts of one repository, aligned
// with the month axis returned by TrendSeries
type RepositorySeries struct {
	Repository string
	Counts     []int
}

// TrendSeries pivots the monthly trend into a sorted month axis and one series
// per repository. Months in which a repository had no release count as 0.
func TrendSeries(trend []model.MonthlyCount) ([]string, []RepositorySeries) {
	var months, repos []string
	for _, m := range trend {
		if !slices.Contains(months, m.YearMonth) {
			months = append(months, m.YearMonth)
		}
		if !slices.Contains(repos, m.Repository) {
			repos = append(repos, m.Repository)
		}
	}
	slices.Sort(months)
	slices.Sort(repos)

	series := make([]RepositorySeries, len(repos))
	for i, repo := range repos {
		series[i] = RepositorySeries{Repository: repo, Counts: make([]int, len(months))}
	}
	for _, m := range trend {
		r, _ := slices.BinarySearch(repos, m.Repository)
		c, _ := slices.BinarySearch(months, m.YearMonth)
		series[r].Counts[c] += m.Count
	}
	return months, series
}
