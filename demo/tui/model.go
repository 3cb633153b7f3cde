package tui

import (
	"wikigate/api"
	"wikigate/demo/client"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the screen state machine
type State string

const (
	StateInput     State = "input"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateLoading   State = "loading"
	StateSummary   State = "summary"
	StateContent   State = "content"
	StateError     State = "error"
)

// Model represents the TUI client state (thin client over the gateway)
type Model struct {
	// Gateway client
	Client *client.Client

	// Local UI state
	State       State
	Query       string
	Results     []string
	Cursor      int
	Summary     *api.SummaryResponse
	Content     *api.ContentResponse
	IncludeLead bool
	Err         error
}

// NewModel creates a new TUI model
func NewModel(gatewayURL string) Model {
	return Model{
		Client:      client.NewClient(gatewayURL),
		State:       StateInput,
		IncludeLead: true,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// selectedTitle returns the article title under the cursor
func (m Model) selectedTitle() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Results) {
		return ""
	}
	return m.Results[m.Cursor]
}
