package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ChartReloadedMsg:
		m.chart = msg.Chart
		m.lastReload = msg.When
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "o":
		m.vertical = !m.vertical
		return m, nil

	case "v":
		m.showValues = !m.showValues
		return m, nil

	case "r":
		if m.reload != nil {
			return m, func() tea.Msg { return m.reload() }
		}
		return m, nil
	}

	return m, nil
}
