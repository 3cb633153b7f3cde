package tui

import (
	"wikigate/demo/client"

	tea "github.com/charmbracelet/bubbletea"
)

// doSearch creates a command that runs a gateway search
func doSearch(c *client.Client, query string, limit int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Search(query, limit)
		return SearchResultMsg{Result: result, Err: err}
	}
}

// fetchSummary creates a command that fetches an article summary
func fetchSummary(c *client.Client, title string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Summary(title)
		return SummaryResultMsg{Result: result, Err: err}
	}
}

// fetchContent creates a command that fetches assembled article content
func fetchContent(c *client.Client, title string, includeLead bool) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Content(title, includeLead)
		return ContentResultMsg{Result: result, Err: err}
	}
}
