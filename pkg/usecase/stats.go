package usecase

import (
	"cmp"
	"slices"
	"time"

	"github.com/m-mizutani/reldash/pkg/domain/model"
)

const dayLayout = "2006-01-02"

var statPeriodOrder = map[model.StatPeriod]int{
	model.StatYearly:  0,
	model.StatMonthly: 1,
	model.StatWeekly:  2,
	model.StatDaily:   3,
}

// ReleaseStats counts weekday releases per repository in yearly, monthly,
// weekly and daily buckets. Saturday and Sunday are judged in the offset the
// timestamp was written with. Weeks are ISO weeks keyed by their ISO year.
// Rows are ordered by period, then repository, then bucket.
func ReleaseStats(records []model.ReleaseRecord) []model.StatRow {
	counts := make(map[model.StatRow]int)

	for i := range records {
		r := &records[i]
		at := r.PublishedAt
		if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		isoYear, week := at.ISOWeek()
		for _, key := range []model.StatRow{
			{Repository: r.Repository, Period: model.StatYearly, Year: at.Year()},
			{Repository: r.Repository, Period: model.StatMonthly, Year: at.Year(), Month: int(at.Month())},
			{Repository: r.Repository, Period: model.StatWeekly, Year: isoYear, Week: week},
			{Repository: r.Repository, Period: model.StatDaily, Year: at.Year(), Day: at.Format(dayLayout)},
		} {
			counts[key]++
		}
	}

	stats := make([]model.StatRow, 0, len(counts))
	for key, n := range counts {
		key.Count = n
		stats = append(stats, key)
	}

	slices.SortFunc(stats, func(a, b model.StatRow) int {
		return cmp.Or(
			cmp.Compare(statPeriodOrder[a.Period], statPeriodOrder[b.Period]),
			cmp.Compare(a.Repository, b.Repository),
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			cmp.Compare(a.Week, b.Week),
			cmp.Compare(a.Day, b.Day),
		)
	})
	return stats
}
