package model

// Columns maps release record attributes to CSV header names
type Columns struct {
	Repository  string `json:"repository" toml:"repository" yaml:"repository"`
	PublishedAt string `json:"published_at" toml:"published_at" yaml:"published_at"`
	TagName     string `json:"tag_name" toml:"tag_name" yaml:"tag_name"`
	Author      string `json:"author" toml:"author" yaml:"author"`
}

// DefaultColumns returns the header names used by the release export script
func DefaultColumns() Columns {
	return Columns{
		Repository:  "레포지토리",
		PublishedAt: "배포일시",
		TagName:     "태그명",
		Author:      "작성자",
	}
}

// Merge returns c with every empty field filled from base
func (c Columns) Merge(base Columns) Columns {
	if c.Repository == "" {
		c.Repository = base.Repository
	}
	if c.PublishedAt == "" {
		c.PublishedAt = base.PublishedAt
	}
	if c.TagName == "" {
		c.TagName = base.TagName
	}
	if c.Author == "" {
		c.Author = base.Author
	}
	return c
}
