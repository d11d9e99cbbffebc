package usecase

import (
	"cmp"
	"slices"

	"github.com/m-mizutani/reldash/pkg/domain/model"
)

// DefaultTopModules is the number of modules kept by TopModules
const DefaultTopModules = 10

// MonthlyTrend counts releases per (repository, year-month), ordered by
// repository then year-month
func MonthlyTrend(records []model.ReleaseRecord) []model.MonthlyCount {
	type key struct{ repository, yearMonth string }

	counts := make(map[key]int)
	for i := range records {
		counts[key{records[i].Repository, records[i].YearMonth}]++
	}

	trend := make([]model.MonthlyCount, 0, len(counts))
	for k, n := range counts {
		trend = append(trend, model.MonthlyCount{
			Repository: k.repository,
			YearMonth:  k.yearMonth,
			Count:      n,
		})
	}

	slices.SortFunc(trend, func(a, b model.MonthlyCount) int {
		return cmp.Or(
			cmp.Compare(a.Repository, b.Repository),
			cmp.Compare(a.YearMonth, b.YearMonth),
		)
	})
	return trend
}

// TopModules counts releases per module, most released first. Records without
// a module are ignored. Equal counts keep first-occurrence order. n <= 0 keeps
// every module.
func TopModules(records []model.ReleaseRecord, n int) []model.ModuleCount {
	counts := countInOrder(records, func(r *model.ReleaseRecord) (string, bool) {
		return r.ModuleName()
	})

	top := make([]model.ModuleCount, len(counts))
	for i, c := range counts {
		top[i] = model.ModuleCount{Module: c.key, Count: c.count}
	}

	if n > 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// AuthorShare counts releases per author, most releases first. Equal counts
// keep first-occurrence order.
func AuthorShare(records []model.ReleaseRecord) []model.AuthorCount {
	counts := countInOrder(records, func(r *model.ReleaseRecord) (string, bool) {
		return r.Author, true
	})

	share := make([]model.AuthorCount, len(counts))
	for i, c := range counts {
		share[i] = model.AuthorCount{Author: c.key, Count: c.count}
	}
	return share
}

// Summarize runs the three aggregations over the same records
func Summarize(records []model.ReleaseRecord, topN int) *model.Summary {
	return &model.Summary{
		Total:        len(records),
		TopN:         topN,
		MonthlyTrend: MonthlyTrend(records),
		TopModules:   TopModules(records, topN),
		AuthorShare:  AuthorShare(records),
	}
}

type keyCount struct {
	key   string
	count int
}

// countInOrder groups records by keyOf and returns the groups sorted by count
// descending. The sort is stable over first-occurrence order.
func countInOrder(records []model.ReleaseRecord, keyOf func(*model.ReleaseRecord) (string, bool)) []keyCount {
	pos := make(map[string]int)
	var counts []keyCount

	for i := range records {
		key, ok := keyOf(&records[i])
		if !ok {
			continue
		}
		if p, seen := pos[key]; seen {
			counts[p].count++
			continue
		}
		pos[key] = len(counts)
		counts = append(counts, keyCount{key: key, count: 1})
	}

	slices.SortStableFunc(counts, func(a, b keyCount) int {
		return cmp.Compare(b.count, a.count)
	})
	return counts
}
