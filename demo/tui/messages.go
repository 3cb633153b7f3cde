package tui

import "wikigate/api"

// Messages for the tea program

// SearchResultMsg is sent when a gateway search completes
type SearchResultMsg struct {
	Result *api.SearchResponse
	Err    error
}

// SummaryResultMsg is sent when a summary fetch completes
type SummaryResultMsg struct {
	Result *api.SummaryResponse
	Err    error
}

// ContentResultMsg is sent when a content fetch completes
type ContentResultMsg struct {
	Result *api.ContentResponse
	Err    error
}
