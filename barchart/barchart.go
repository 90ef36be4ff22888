// Package barchart renders labeled numeric data as rows of colored
// block characters, horizontally or vertically, for terminal output.
package barchart

import (
	"errors"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// ErrEmptyData is returned when a chart is constructed with no entries.
var ErrEmptyData = errors.New("barchart: data cannot be empty")

// Entry is a single labeled value. Order is significant and labels
// need not be unique.
type Entry struct {
	Label string
	Value float64
}

// Orientation selects the direction bars grow in.
type Orientation int

const (
	// Horizontal draws one bar per line, growing to the right.
	Horizontal Orientation = iota
	// Vertical draws one column per entry, growing upward.
	Vertical
)

const (
	defaultBarWidth = 1
	// defaultHeight is the vertical chart height when neither the
	// chart nor the container constrains it further.
	defaultHeight = 10
	// minimumWidth is the minimum measured width when no explicit
	// width is configured.
	minimumWidth = 20
	// valueReservation is the fixed column budget reserved for value
	// text in horizontal mode.
	valueReservation = 12
)

// BarChart is an immutable bar chart. Configuration and scaling are
// fixed at construction; rendering is a pure projection and may be
// repeated freely.
type BarChart struct {
	entries     []Entry
	width       int // 0 means fill the container
	maxValue    float64
	showValues  bool
	barWidth    int
	orientation Orientation
	height      int // vertical mode override, 0 means default

	barStyles  []lipgloss.Style // one resolved style per entry
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
}

type config struct {
	width       int
	maxValue    float64
	hasMaxValue bool
	showValues  bool
	barWidth    int
	orientation Orientation
	height      int
	style       string
	barStyles   []string
	labelStyle  string
	valueStyle  string
}

// Option configures a chart at construction.
type Option func(*config)

// WithWidth fixes the total chart width instead of filling the container.
func WithWidth(width int) Option {
	return func(c *config) { c.width = width }
}

// WithMaxValue fixes the value treated as 100% of a bar's extent.
// Without it the maximum value in the data is used.
func WithMaxValue(max float64) Option {
	return func(c *config) {
		c.maxValue = max
		c.hasMaxValue = true
	}
}

// WithShowValues toggles the value text after each bar. Values are
// shown by default.
func WithShowValues(show bool) Option {
	return func(c *config) { c.showValues = show }
}

// WithBarWidth sets the number of characters per logical bar unit.
func WithBarWidth(width int) Option {
	return func(c *config) {
		if width > 0 {
			c.barWidth = width
		}
	}
}

// WithOrientation selects horizontal or vertical bars.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}

// WithHeight sets the chart height in rows for vertical mode.
func WithHeight(height int) Option {
	return func(c *config) { c.height = height }
}

// WithStyle sets the default style token for all bars.
func WithStyle(token string) Option {
	return func(c *config) { c.style = token }
}

// WithBarStyles sets per-bar style tokens, cycled when there are more
// entries than tokens. Takes precedence over WithStyle.
func WithBarStyles(tokens ...string) Option {
	return func(c *config) { c.barStyles = tokens }
}

// WithLabelStyle sets the style token for labels.
func WithLabelStyle(token string) Option {
	return func(c *config) { c.labelStyle = token }
}

// WithValueStyle sets the style token for value text.
func WithValueStyle(token string) Option {
	return func(c *config) { c.valueStyle = token }
}

// New creates a chart from an ordered list of entries.
func New(entries []Entry, opts ...Option) (*BarChart, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyData
	}

	cfg := config{
		showValues: true,
		barWidth:   defaultBarWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)

	chart := &BarChart{
		entries:     copied,
		width:       cfg.width,
		maxValue:    effectiveMaximum(copied, cfg),
		showValues:  cfg.showValues,
		barWidth:    cfg.barWidth,
		orientation: cfg.orientation,
		height:      cfg.height,
		barStyles:   resolveBarStyles(len(copied), cfg),
		labelStyle:  ParseStyle(cfg.labelStyle),
		valueStyle:  ParseStyle(cfg.valueStyle),
	}

	return chart, nil
}

// FromValues creates a chart from bare values, labeling each with its
// zero-based index.
func FromValues(values []float64, opts ...Option) (*BarChart, error) {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Label: strconv.Itoa(i), Value: v}
	}
	return New(entries, opts...)
}

// FromMap creates a chart from a label-to-value map. Go maps carry no
// iteration order, so entries are sorted by label for deterministic
// output.
func FromMap(data map[string]float64, opts ...Option) (*BarChart, error) {
	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	entries := make([]Entry, len(labels))
	for i, label := range labels {
		entries[i] = Entry{Label: label, Value: data[label]}
	}
	return New(entries, opts...)
}

// Entries returns a copy of the chart's entries.
func (c *BarChart) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// MaxValue returns the effective maximum used for scaling.
func (c *BarChart) MaxValue() float64 {
	return c.maxValue
}

// effectiveMaximum resolves the value treated as 100% scale: the
// configured maximum if set, else the largest value in the data. A
// result of zero or less is coerced to 1 to keep scaling finite.
func effectiveMaximum(entries []Entry, cfg config) float64 {
	max := cfg.maxValue
	if !cfg.hasMaxValue {
		max = entries[0].Value
		for _, e := range entries[1:] {
			if e.Value > max {
				max = e.Value
			}
		}
	}
	if max <= 0 {
		max = 1.0
	}
	return max
}

// resolveBarStyles resolves one style per entry at construction so
// render never re-parses tokens. Per-bar tokens win over the default
// style, which wins over the built-in palette; lists shorter than the
// data are cycled.
func resolveBarStyles(n int, cfg config) []lipgloss.Style {
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		switch {
		case len(cfg.barStyles) > 0:
			styles[i] = ParseStyle(cfg.barStyles[i%len(cfg.barStyles)])
		case cfg.style != "":
			styles[i] = ParseStyle(cfg.style)
		default:
			styles[i] = paletteStyle(i)
		}
	}
	return styles
}
