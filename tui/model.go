// Package tui is the interactive chart viewer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termchart/internal/dataset"
)

// ReloadFunc re-reads the chart source and returns a ChartReloadedMsg
// or an ErrorMsg.
type ReloadFunc func() tea.Msg

// Model represents the viewer state
type Model struct {
	// Chart definition and where it came from
	source string
	chart  *dataset.Chart

	// Render overrides toggled at runtime
	vertical   bool
	showValues bool

	// Terminal size
	width  int
	height int

	// State
	lastReload string
	quitting   bool
	err        error

	reload ReloadFunc

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Padding(0, 1)

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Subtitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return styles
}

// NewModel creates a viewer for a chart definition. The source is
// shown in the header; reload may be nil when there is nothing to
// re-read.
func NewModel(source string, chart *dataset.Chart, reload ReloadFunc) Model {
	showValues := true
	if chart.ShowValues != nil {
		showValues = *chart.ShowValues
	}

	return Model{
		source:     source,
		chart:      chart,
		vertical:   chart.Vertical,
		showValues: showValues,
		width:      80,
		height:     24,
		reload:     reload,
		styles:     DefaultStyles(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}
