package wikipedia

// SearchResponse is the payload of /page/search/title.
type SearchResponse struct {
	Pages []SearchPage `json:"pages"`
}

// SearchPage is a single search hit. Only the title is used; the rest of the
// upstream fields are ignored.
type SearchPage struct {
	Title string `json:"title"`
}

// Summary is the payload of /page/summary/{title}.
type Summary struct {
	Title       string      `json:"title"`
	Extract     string      `json:"extract"`
	ContentURLs ContentURLs `json:"content_urls"`
}

// ContentURLs holds the canonical page links of a summary.
type ContentURLs struct {
	Desktop PageURL `json:"desktop"`
}

// PageURL is a single canonical link.
type PageURL struct {
	Page string `json:"page"`
}

// MobileSections is the payload of /page/mobile-sections/{title}: the lead
// block plus the remaining body sections.
type MobileSections struct {
	Lead      Lead             `json:"lead"`
	Remaining RemainingSection `json:"remaining"`
}

// Lead is the introductory block of an article.
type Lead struct {
	NormalizedTitle string    `json:"normalizedtitle"`
	Sections        []Section `json:"sections"`
}

// RemainingSection wraps the body sections of an article.
type RemainingSection struct {
	Sections []Section `json:"sections"`
}

// Section is one article section. Only the text is consumed.
type Section struct {
	Text string `json:"text"`
}
