package config

import "time"

// Search Constants
const (
	// DefaultSearchLimit is the number of search results returned when no limit is given
	DefaultSearchLimit = 10

	// MinSearchLimit is the smallest limit a caller may request
	MinSearchLimit = 1

	// MaxSearchLimit is the largest limit a caller may request
	MaxSearchLimit = 50
)

// Content Constants
const (
	// MaxContentLength is the maximum character length of assembled article content
	MaxContentLength = 1000

	// ContentEllipsis is appended when assembled content is truncated
	ContentEllipsis = "..."

	// MaxBodySections is the number of body sections included in assembled content
	MaxBodySections = 3
)

// Upstream Constants
const (
	// DefaultLanguage selects the Wikipedia language edition
	DefaultLanguage = "ru"

	// UpstreamTimeout bounds a single round trip to the Wikipedia API
	UpstreamTimeout = 10 * time.Second
)
