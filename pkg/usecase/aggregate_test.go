package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/usecase"
)

func newRecord(repo, publishedAt, tagName, author string) model.ReleaseRecord {
	ts, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		panic(err)
	}
	return model.ReleaseRecord{
		Repository:  repo,
		PublishedAt: ts,
		TagName:     tagName,
		Author:      author,
		YearMonth:   ts.Format("2006-01"),
		Module:      usecase.ExtractModule(tagName),
	}
}

func TestSummarize_Example(t *testing.T) {
	records := []model.ReleaseRecord{
		newRecord("R", "2024-01-03T10:00:00Z", "v1@core@", "alice"),
		newRecord("R", "2024-01-10T10:00:00Z", "v1@core@", "bob"),
		newRecord("R", "2024-01-20T10:00:00Z", "v2@auth@", "alice"),
	}

	summary := usecase.Summarize(records, usecase.DefaultTopModules)

	gt.Equal(t, summary.Total, 3)
	gt.Equal(t, summary.MonthlyTrend, []model.MonthlyCount{
		{Repository: "R", YearMonth: "2024-01", Count: 3},
	})
	gt.Equal(t, summary.TopModules, []model.ModuleCount{
		{Module: "core", Count: 2},
		{Module: "auth", Count: 1},
	})
	gt.Equal(t, summary.AuthorShare, []model.AuthorCount{
		{Author: "alice", Count: 2},
		{Author: "bob", Count: 1},
	})
}

func TestSummarize_RecordWithoutModule(t *testing.T) {
	records := []model.ReleaseRecord{
		newRecord("R", "2024-01-03T10:00:00Z", "v1@core@", "alice"),
		newRecord("R", "2024-02-03T10:00:00Z", "v1.0.0", "bob"),
	}

	summary := usecase.Summarize(records, usecase.DefaultTopModules)

	gt.Equal(t, summary.TopModules, []model.ModuleCount{{Module: "core", Count: 1}})
	gt.Equal(t, summary.MonthlyTrend, []model.MonthlyCount{
		{Repository: "R", YearMonth: "2024-01", Count: 1},
		{Repository: "R", YearMonth: "2024-02", Count: 1},
	})
	gt.Equal(t, summary.AuthorShare, []model.AuthorCount{
		{Author: "alice", Count: 1},
		{Author: "bob", Count: 1},
	})
}

func TestMonthlyTrend_Order(t *testing.T) {
	records := []model.ReleaseRecord{
		newRecord("seed-design", "2024-03-01T00:00:00Z", "a", "x"),
		newRecord("stackflow", "2024-02-01T00:00:00Z", "a", "x"),
		newRecord("seed-design", "2023-12-01T00:00:00Z", "a", "x"),
		newRecord("stackflow", "2024-01-01T00:00:00Z", "a", "x"),
		newRecord("stackflow", "2024-02-11T00:00:00Z", "a", "x"),
	}

	gt.Equal(t, usecase.MonthlyTrend(records), []model.MonthlyCount{
		{Repository: "seed-design", YearMonth: "2023-12", Count: 1},
		{Repository: "seed-design", YearMonth: "2024-03", Count: 1},
		{Repository: "stackflow", YearMonth: "2024-01", Count: 1},
		{Repository: "stackflow", YearMonth: "2024-02", Count: 2},
	})
}

func TestTopModules_TiesKeepFirstOccurrence(t *testing.T) {
	records := []model.ReleaseRecord{
		newRecord("R", "2024-01-01T00:00:00Z", "@b@1", "x"),
		newRecord("R", "2024-01-01T00:00:00Z", "@a@1", "x"),
		newRecord("R", "2024-01-01T00:00:00Z", "@c@1", "x"),
		newRecord("R", "2024-01-01T00:00:00Z", "@c@2", "x"),
		newRecord("R", "2024-01-01T00:00:00Z", "@a@2", "x"),
	}

	gt.Equal(t, usecase.TopModules(records, 10), []model.ModuleCount{
		{Module: "a", Count: 2},
		{Module: "c", Count: 2},
		{Module: "b", Count: 1},
	})
}

func TestTopModules_Truncates(t *testing.T) {
	var records []model.ReleaseRecord
	for i := 0; i < 15; i++ {
		// module-i is released i+1 times
		for j := 0; j <= i; j++ {
			records = append(records, newRecord("R", "2024-01-01T00:00:00Z", fmt.Sprintf("@module-%02d@", i), "x"))
		}
	}

	top := usecase.TopModules(records, usecase.DefaultTopModules)
	gt.A(t, top).Length(10)
	gt.Equal(t, top[0], model.ModuleCount{Module: "module-14", Count: 15})
	gt.Equal(t, top[9], model.ModuleCount{Module: "module-05", Count: 6})
	for i := 1; i < len(top); i++ {
		gt.B(t, top[i-1].Count >= top[i].Count).True()
	}

	gt.A(t, usecase.TopModules(records, 0)).Length(15)
	gt.A(t, usecase.TopModules(records, 3)).Length(3)
}

func TestAggregations_Empty(t *testing.T) {
	summary := usecase.Summarize(nil, usecase.DefaultTopModules)
	gt.Equal(t, summary.Total, 0)
	gt.A(t, summary.MonthlyTrend).Length(0)
	gt.A(t, summary.TopModules).Length(0)
	gt.A(t, summary.AuthorShare).Length(0)
}

func TestAggregations_CountsAreConserved(t *testing.T) {
	repos := []string{"stackflow", "seed-design", "karrot"}
	authors := []string{"alice", "bob", "", "carol"}
	tags := []string{"@core@1", "v1.0.0", "@react@2", "@core@3", "plain"}

	var records []model.ReleaseRecord
	for i := 0; i < 200; i++ {
		ts := time.Date(2023, time.Month(1+i%14), 1+i%27, i%24, 0, 0, 0, time.UTC)
		records = append(records, newRecord(
			repos[i%len(repos)],
			ts.Format(time.RFC3339),
			tags[i%len(tags)],
			authors[i%len(authors)],
		))
	}

	summary := usecase.Summarize(records, usecase.DefaultTopModules)

	perRepo := map[string]int{}
	for _, r := range records {
		perRepo[r.Repository]++
	}
	trendPerRepo := map[string]int{}
	for _, m := range summary.MonthlyTrend {
		trendPerRepo[m.Repository] += m.Count
	}
	gt.Equal(t, trendPerRepo, perRepo)

	authorTotal := 0
	for _, a := range summary.AuthorShare {
		authorTotal += a.Count
	}
	gt.Equal(t, authorTotal, len(records))

	withModule := 0
	for _, r := range records {
		if r.Module != nil {
			withModule++
		}
	}
	moduleTotal := 0
	for _, m := range summary.TopModules {
		moduleTotal += m.Count
	}
	gt.Equal(t, moduleTotal, withModule)
	gt.B(t, len(summary.TopModules) <= usecase.DefaultTopModules).True()
}
