// Package content assembles a display string from the sectioned article
// payload returned by the Wikipedia mobile-sections endpoint.
package content

import (
	"strings"

	"wikigate/config"
	"wikigate/wikipedia"
)

// Assemble builds the article display string: the first lead section (when
// includeLead is set), followed by the first MaxBodySections body sections,
// joined with blank lines and truncated to MaxContentLength characters with an
// ellipsis marker. The returned count is the TOTAL number of body sections in
// the payload, not the number concatenated; callers rely on that for
// sectionsCount.
func Assemble(ms *wikipedia.MobileSections, includeLead bool) (string, int) {
	fragments := make([]string, 0, config.MaxBodySections+1)

	if includeLead && len(ms.Lead.Sections) > 0 {
		fragments = append(fragments, ms.Lead.Sections[0].Text)
	}

	body := ms.Remaining.Sections
	for i := 0; i < len(body) && i < config.MaxBodySections; i++ {
		fragments = append(fragments, body[i].Text)
	}

	text := strings.Join(fragments, "\n\n")
	// Truncation is measured in characters, not bytes; section text is
	// frequently non-ASCII.
	if runes := []rune(text); len(runes) > config.MaxContentLength {
		text = string(runes[:config.MaxContentLength]) + config.ContentEllipsis
	}

	return text, len(body)
}
