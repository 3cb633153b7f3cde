package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Wikipedia Gateway Demo"))
	b.WriteString("\n\n")

	switch m.State {
	case StateInput:
		b.WriteString(InfoStyle.Render("Search query:"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("> %s_", m.Query))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Enter to search | Esc to quit"))

	case StateSearching:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Searching for %q...", m.Query)))

	case StateLoading:
		b.WriteString(StatusStyle.Render("Fetching article..."))

	case StateResults:
		b.WriteString(m.viewResults())

	case StateSummary:
		b.WriteString(m.viewSummary())

	case StateContent:
		b.WriteString(m.viewContent())

	case StateError:
		errMsg := "unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		b.WriteString(ErrorStyle.Render("Error: " + errMsg))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press Enter to go back"))
	}

	b.WriteString("\n")
	return b.String()
}

// viewResults renders the search result list
func (m Model) viewResults() string {
	var b strings.Builder

	header := fmt.Sprintf("Results for %q (%d)", m.Query, len(m.Results))
	b.WriteString(HighlightStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.Results) == 0 {
		b.WriteString(InfoStyle.Render("No articles found"))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Esc to search again"))
		return b.String()
	}

	for i, title := range m.Results {
		if i == m.Cursor {
			b.WriteString(CursorStyle.Render("> " + title))
		} else {
			b.WriteString("  " + title)
		}
		b.WriteString("\n")
	}

	lead := "on"
	if !m.IncludeLead {
		lead = "off"
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf(
		"s: summary | c: content | l: toggle lead (%s) | Esc: new search", lead)))
	return b.String()
}

// viewSummary renders an article summary
func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render(m.Summary.Title))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Render(m.Summary.Summary))
	b.WriteString("\n")
	if m.Summary.URL != "" {
		b.WriteString(InfoStyle.Render(m.Summary.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Press Enter to go back"))
	return b.String()
}

// viewContent renders assembled article content
func (m Model) viewContent() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render(m.Content.Title))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Render(m.Content.Content))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Body sections in article: %d", m.Content.SectionsCount)))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Press Enter to go back"))
	return b.String()
}
