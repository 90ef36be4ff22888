package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termchart/barchart"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return m.renderError()
	}

	sections := []string{
		m.renderHeader(),
		m.renderChart(),
		m.renderFooter(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.styles.Border.Render(content)
}

// renderHeader renders the title row
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("termchart")

	info := m.source
	if m.lastReload != "" {
		info = fmt.Sprintf("%s  reloaded %s", info, m.lastReload)
	}

	if info == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.styles.Subtitle.Render(info))
}

// renderChart builds the chart with the current overrides and renders
// it into the space inside the border.
func (m Model) renderChart() string {
	orientation := barchart.Horizontal
	if m.vertical {
		orientation = barchart.Vertical
	}

	chart, err := m.chart.Build(
		barchart.WithOrientation(orientation),
		barchart.WithShowValues(m.showValues),
	)
	if err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", err))
	}

	// Border and padding take four columns; header and footer leave
	// four rows fewer for bars.
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	height := m.height - 6
	if height < 1 {
		height = 1
	}

	return "\n" + chart.View(width, height)
}

// renderFooter renders the footer with help text
func (m Model) renderFooter() string {
	help := "\nq: quit | o: flip orientation | v: toggle values"
	if m.reload != nil {
		help += " | r: reload"
	}
	return m.styles.Muted.Render(help)
}

// renderError renders the error screen
func (m Model) renderError() string {
	errorText := m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	hintText := m.styles.Muted.Render("\n\nFix the chart file and press 'r' to reload.")
	helpText := m.styles.Muted.Render("\n\nq: quit")

	content := lipgloss.JoinVertical(lipgloss.Left, errorText, hintText, helpText)
	return m.styles.Border.Render(content)
}
