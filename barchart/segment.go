package barchart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options are the container constraints supplied at render time.
type Options struct {
	// MaxWidth is the widest line the container will accept.
	MaxWidth int
	// Height is the container height in rows; 0 means unconstrained.
	Height int
}

// Segment is a fragment of styled output. A row is a run of segments
// terminated by a line-break segment.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// lineBreak terminates the current output row.
func lineBreak() Segment {
	return Segment{Text: "\n"}
}

// Measurement is the width range a chart requests from its container.
type Measurement struct {
	Minimum int
	Maximum int
}

// Render produces the chart's output as a flat segment sequence. A
// fresh slice is returned on every call; output depends only on the
// chart and opts.
func (c *BarChart) Render(opts Options) []Segment {
	if c.orientation == Vertical {
		return c.renderVertical(opts)
	}
	return c.renderHorizontal(opts)
}

// Measure reports the width range the chart wants: the fixed width if
// one was configured, else from the built-in minimum up to the
// container maximum.
func (c *BarChart) Measure(opts Options) Measurement {
	if c.width > 0 {
		return Measurement{Minimum: c.width, Maximum: c.width}
	}
	return Measurement{Minimum: minimumWidth, Maximum: opts.MaxWidth}
}

// View renders the chart to a single string with styles applied,
// suitable for a bubbletea View.
func (c *BarChart) View(width, height int) string {
	var b strings.Builder
	for _, seg := range c.Render(Options{MaxWidth: width, Height: height}) {
		if seg.Text == "\n" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(seg.Style.Render(seg.Text))
	}
	return b.String()
}
