// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyward/almanac/internal/state"
)

// Msg types for Bubble Tea.
type (
	// TickMsg triggers periodic clock updates.
	TickMsg time.Time

	// DataUpdateMsg signals a fresh round of observations.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals an observation error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model: a table of observed bodies with a
// detail card for the selected one.
type Model struct {
	state *state.Manager

	width  int
	height int
	ready  bool

	cursor     int
	showDetail bool

	snapshot state.Snapshot
	lastErr  error
}

// New creates the root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:      stateMgr,
		snapshot:   stateMgr.Snapshot(),
		showDetail: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		return m, tickCmd()

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.lastErr = nil
		m.clampCursor()
		return m, nil

	case ErrorMsg:
		m.lastErr = msg.Error
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			m.cursor++
			m.clampCursor()
		case "enter", "d":
			m.showDetail = !m.showDetail
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) clampCursor() {
	if n := len(m.snapshot.Observations); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}
