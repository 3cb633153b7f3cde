package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wikigate/config"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case SearchResultMsg:
		return m.handleSearchResult(msg)
	case SummaryResultMsg:
		return m.handleSummaryResult(msg)
	case ContentResultMsg:
		return m.handleContentResult(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.State {
	case StateInput:
		return m.handleInputKeys(msg)
	case StateResults:
		return m.handleResultsKeys(msg)
	case StateSummary, StateContent, StateError:
		return m.handleViewerKeys(msg)
	}
	return m, nil
}

// handleInputKeys edits the search query
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.Query == "" {
			return m, nil
		}
		m.State = StateSearching
		return m, doSearch(m.Client, m.Query, config.DefaultSearchLimit)
	case tea.KeyBackspace:
		if len(m.Query) > 0 {
			runes := []rune(m.Query)
			m.Query = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeySpace:
		m.Query += " "
		return m, nil
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// handleResultsKeys navigates the search results
func (m Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.State = StateInput
		m.Results = nil
		m.Cursor = 0
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Results)-1 {
			m.Cursor++
		}
		return m, nil
	case "l":
		m.IncludeLead = !m.IncludeLead
		return m, nil
	case "s", "enter":
		if title := m.selectedTitle(); title != "" {
			m.State = StateLoading
			return m, fetchSummary(m.Client, title)
		}
		return m, nil
	case "c":
		if title := m.selectedTitle(); title != "" {
			m.State = StateLoading
			return m, fetchContent(m.Client, title, m.IncludeLead)
		}
		return m, nil
	}
	return m, nil
}

// handleViewerKeys leaves the summary/content/error screens
func (m Model) handleViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.Summary = nil
		m.Content = nil
		m.Err = nil
		if len(m.Results) > 0 {
			m.State = StateResults
		} else {
			m.State = StateInput
		}
		return m, nil
	}
	return m, nil
}

// handleSearchResult processes search completion
func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Results = msg.Result.Articles
	m.Cursor = 0
	m.State = StateResults
	return m, nil
}

// handleSummaryResult processes summary completion
func (m Model) handleSummaryResult(msg SummaryResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Summary = msg.Result
	m.State = StateSummary
	return m, nil
}

// handleContentResult processes content completion
func (m Model) handleContentResult(msg ContentResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Content = msg.Result
	m.State = StateContent
	return m, nil
}
