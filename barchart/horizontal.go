package barchart

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const fullBlock = "█"

// endBlocks maps a remainder in eighths to the partial glyph that
// finishes a bar. Index 0 is unused; remainders at or beyond the
// table length draw nothing.
var endBlocks = [...]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// renderHorizontal emits one row per entry: right-aligned label, one
// space, bar glyphs, then optional value text.
func (c *BarChart) renderHorizontal(opts Options) []Segment {
	available := c.width
	if available == 0 {
		available = opts.MaxWidth
	}
	if available > opts.MaxWidth {
		available = opts.MaxWidth
	}

	labelWidth := c.labelColumnWidth()

	barArea := available - labelWidth
	if c.showValues {
		barArea -= valueReservation
	}
	if barArea < 1 {
		barArea = 1
	}

	segments := make([]Segment, 0, len(c.entries)*6)
	for i, entry := range c.entries {
		padding := labelWidth - runewidth.StringWidth(entry.Label) - 1
		if padding < 0 {
			padding = 0
		}

		segments = append(segments,
			Segment{Text: strings.Repeat(" ", padding)},
			Segment{Text: entry.Label, Style: c.labelStyle},
			Segment{Text: " "},
			Segment{Text: c.barGlyphs(entry.Value, barArea), Style: c.barStyles[i]},
		)
		if c.showValues {
			segments = append(segments, Segment{Text: formatValue(entry.Value), Style: c.valueStyle})
		}
		segments = append(segments, lineBreak())
	}

	return segments
}

// labelColumnWidth is the widest label plus two columns of padding.
func (c *BarChart) labelColumnWidth() int {
	widest := 0
	for _, entry := range c.entries {
		if w := runewidth.StringWidth(entry.Label); w > widest {
			widest = w
		}
	}
	return widest + 2
}

// barGlyphs builds the bar for one value within barArea columns. The
// extent is split into whole blocks by the configured bar width; a
// remainder inside the partial-glyph range adds one finer-grained
// glyph. Values over the maximum are not clamped, so a bar can exceed
// barArea when the caller supplies an inconsistent maximum.
func (c *BarChart) barGlyphs(value float64, barArea int) string {
	extent := int((value / c.maxValue) * float64(barArea))
	if extent <= 0 {
		return ""
	}

	full := extent / c.barWidth
	remainder := extent % c.barWidth

	bar := strings.Repeat(fullBlock, full)
	if remainder > 0 && remainder < len(endBlocks) {
		bar += endBlocks[remainder]
	}
	return bar
}

// formatValue renders a value with a leading space: integral values
// as plain integers, fractional ones with two decimal places.
func formatValue(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return fmt.Sprintf(" %d", int64(value))
	}
	return fmt.Sprintf(" %.2f", value)
}
