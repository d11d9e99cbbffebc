package model

// StatPeriod is the bucket size of a StatRow
type StatPeriod string

const (
	StatYearly  StatPeriod = "yearly"
	StatMonthly StatPeriod = "monthly"
	StatWeekly  StatPeriod = "weekly"
	StatDaily   StatPeriod = "daily"
)

// StatRow is the number of weekday releases of a repository in one
// yearly, monthly, weekly or daily bucket. Month, Week and Day are set only
// for their own period.
type StatRow struct {
	Repository string     `json:"repo"`
	Period     StatPeriod `json:"period"`
	Year       int        `json:"year"`
	Month      int        `json:"month,omitempty"`
	Week       int        `json:"week,omitempty"`
	Day        string     `json:"day,omitempty"`
	Count      int        `json:"count"`
}
