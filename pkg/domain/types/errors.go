package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagParse marks a missing, empty or malformed CSV input, including a missing column.
	ErrTagParse = goerr.NewTag("parse")

	// ErrTagInvalidTimestamp marks a release timestamp that matches none of the accepted layouts.
	ErrTagInvalidTimestamp = goerr.NewTag("invalid_timestamp")

	// ErrTagConfig marks an invalid flag value or dashboard config file.
	ErrTagConfig = goerr.NewTag("config")
)
