package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/domain/types"
	"github.com/m-mizutani/reldash/pkg/infra/csvfile"
)

// yearMonthLayout formats the monthly bucket of a release
const yearMonthLayout = "2006-01"

// modulePattern captures the text between the first two '@' of a tag name,
// e.g. "@stackflow/core@1.0.0" -> "stackflow/core"
var modulePattern = regexp.MustCompile(`@(.*?)@`)

// timestampLayouts are tried in order. Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

// Derive converts every table row into a ReleaseRecord. It returns exactly one
// record per row or an error; no row is skipped.
func Derive(table *csvfile.Table, columns model.Columns) ([]model.ReleaseRecord, error) {
	idx, err := resolveColumns(table, columns)
	if err != nil {
		return nil, err
	}

	records := make([]model.ReleaseRecord, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		publishedAt, err := ParseTimestamp(row[idx.publishedAt])
		if err != nil {
			// Line 1 is the header
			return nil, goerr.Wrap(err, "failed to derive release record",
				goerr.V("row", i+2),
				goerr.V("column", columns.PublishedAt),
			)
		}

		tagName := row[idx.tagName]
		records = append(records, model.ReleaseRecord{
			Repository:  row[idx.repository],
			PublishedAt: publishedAt,
			TagName:     tagName,
			Author:      row[idx.author],
			YearMonth:   publishedAt.Format(yearMonthLayout),
			Module:      ExtractModule(tagName),
		})
	}

	return records, nil
}

type columnIndex struct {
	repository  int
	publishedAt int
	tagName     int
	author      int
}

func resolveColumns(table *csvfile.Table, columns model.Columns) (*columnIndex, error) {
	var idx columnIndex
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{columns.Repository, &idx.repository},
		{columns.PublishedAt, &idx.publishedAt},
		{columns.TagName, &idx.tagName},
		{columns.Author, &idx.author},
	} {
		i, err := table.Index(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = i
	}
	return &idx, nil
}

// ParseTimestamp parses a release timestamp in any of the accepted layouts
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, goerr.New("invalid release timestamp",
		goerr.T(types.ErrTagInvalidTimestamp),
		goerr.V("value", value),
	)
}

// ExtractModule returns the module embedded in a tag name, or nil if the tag
// has no "@...@" part
func ExtractModule(tagName string) *string {
	m := modulePattern.FindStringSubmatch(tagName)
	if m == nil {
		return nil
	}
	module := m[1]
	return &module
}
