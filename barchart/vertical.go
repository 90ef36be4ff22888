package barchart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderVertical emits bar rows top-down followed by one label row.
// Terminal output is append-only, so every column height is computed
// before the first row: a cell at row r is filled iff its column
// reaches r.
func (c *BarChart) renderVertical(opts Options) []Segment {
	height := c.chartHeight(opts)

	heights := make([]int, len(c.entries))
	for i, entry := range c.entries {
		if h := int((entry.Value / c.maxValue) * float64(height)); h > 0 {
			heights[i] = h
		}
	}

	filled := strings.Repeat(fullBlock, c.barWidth)
	blank := strings.Repeat(" ", c.barWidth)

	var segments []Segment
	for row := height; row >= 1; row-- {
		for i := range c.entries {
			if i > 0 {
				segments = append(segments, Segment{Text: " "})
			}
			if heights[i] >= row {
				segments = append(segments, Segment{Text: filled, Style: c.barStyles[i]})
			} else {
				segments = append(segments, Segment{Text: blank})
			}
		}
		segments = append(segments, lineBreak())
	}

	for i, entry := range c.entries {
		if i > 0 {
			segments = append(segments, Segment{Text: " "})
		}
		segments = append(segments, Segment{Text: c.labelCell(entry.Label), Style: c.labelStyle})
	}
	segments = append(segments, lineBreak())

	return segments
}

// chartHeight resolves the row count for vertical mode: the explicit
// override if set, else the default capped by the container, never
// below one row.
func (c *BarChart) chartHeight(opts Options) int {
	height := c.height
	if height == 0 {
		height = defaultHeight
		if opts.Height > 0 && opts.Height < height {
			height = opts.Height
		}
	}
	if height < 1 {
		height = 1
	}
	return height
}

// labelCell fits a label into a column: truncated when wider than the
// bar, right-padded with spaces when narrower.
func (c *BarChart) labelCell(label string) string {
	width := runewidth.StringWidth(label)
	if width > c.barWidth {
		return runewidth.Truncate(label, c.barWidth, "")
	}
	return label + strings.Repeat(" ", c.barWidth-width)
}
