package model

import "time"

// ReleaseRecord represents a single release event read from the CSV export
type ReleaseRecord struct {
	Repository  string    `json:"repository"`   // Repository name
	PublishedAt time.Time `json:"published_at"` // Release timestamp
	TagName     string    `json:"tag_name"`     // Release tag name, e.g. "@scope/core@1.2.0"
	Author      string    `json:"author"`       // Release author
	YearMonth   string    `json:"year_month"`   // PublishedAt truncated to month, "2006-01"
	Module      *string   `json:"module,omitempty"`
}

// ModuleName returns the module and whether the tag name carried one
func (r *ReleaseRecord) ModuleName() (string, bool) {
	if r.Module == nil {
		return "", false
	}
	return *r.Module, true
}
