package model

// MonthlyCount is the number of releases of a repository in a year-month bucket
type MonthlyCount struct {
	Repository string `json:"repository"`
	YearMonth  string `json:"year_month"`
	Count      int    `json:"count"`
}

// ModuleCount is the number of releases carrying a module
type ModuleCount struct {
	Module string `json:"module"`
	Count  int    `json:"count"`
}

// AuthorCount is the number of releases made by an author
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// Summary holds the three aggregations of one dashboard run
type Summary struct {
	Total        int            `json:"total"`
	TopN         int            `json:"top_n"`
	MonthlyTrend []MonthlyCount `json:"monthly_trend"`
	TopModules   []ModuleCount  `json:"top_modules"`
	AuthorShare  []AuthorCount  `json:"author_share"`
}
