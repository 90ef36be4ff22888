// Package dataset loads chart definitions from TOML files and
// command-line arguments.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/young1lin/termchart/barchart"
)

// Chart is a declarative chart definition. The zero value renders a
// horizontal chart that fills the container and shows values.
type Chart struct {
	Width      int      `toml:"width"`
	MaxValue   *float64 `toml:"max_value"`
	ShowValues *bool    `toml:"show_values"`
	BarWidth   int      `toml:"bar_width"`
	Vertical   bool     `toml:"vertical"`
	Height     int      `toml:"height"`
	Style      string   `toml:"style"`
	BarStyles  []string `toml:"bar_styles"`
	LabelStyle string   `toml:"label_style"`
	ValueStyle string   `toml:"value_style"`
	Bars       []Bar    `toml:"bars"`
}

// Bar is one labeled value in a chart definition.
type Bar struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
}

// FromArgs builds a chart definition from command-line arguments.
// Each argument is either a "label=value" pair or a bare number,
// which is labeled with its zero-based position.
func FromArgs(args []string) (*Chart, error) {
	chart := &Chart{}
	for i, arg := range args {
		label, raw, found := strings.Cut(arg, "=")
		if !found {
			label, raw = strconv.Itoa(i), arg
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %q is not a number", arg, raw)
		}
		chart.Bars = append(chart.Bars, Bar{Label: label, Value: value})
	}
	return chart, nil
}

// Options translates the definition's settings to chart options.
func (c *Chart) Options() []barchart.Option {
	var opts []barchart.Option
	if c.Width > 0 {
		opts = append(opts, barchart.WithWidth(c.Width))
	}
	if c.MaxValue != nil {
		opts = append(opts, barchart.WithMaxValue(*c.MaxValue))
	}
	if c.ShowValues != nil {
		opts = append(opts, barchart.WithShowValues(*c.ShowValues))
	}
	if c.BarWidth > 0 {
		opts = append(opts, barchart.WithBarWidth(c.BarWidth))
	}
	if c.Vertical {
		opts = append(opts, barchart.WithOrientation(barchart.Vertical))
	}
	if c.Height > 0 {
		opts = append(opts, barchart.WithHeight(c.Height))
	}
	if c.Style != "" {
		opts = append(opts, barchart.WithStyle(c.Style))
	}
	if len(c.BarStyles) > 0 {
		opts = append(opts, barchart.WithBarStyles(c.BarStyles...))
	}
	if c.LabelStyle != "" {
		opts = append(opts, barchart.WithLabelStyle(c.LabelStyle))
	}
	if c.ValueStyle != "" {
		opts = append(opts, barchart.WithValueStyle(c.ValueStyle))
	}
	return opts
}

// Build constructs the renderable chart. Extra options are applied
// after the definition's own and therefore override it.
func (c *Chart) Build(extra ...barchart.Option) (*barchart.BarChart, error) {
	entries := make([]barchart.Entry, len(c.Bars))
	for i, bar := range c.Bars {
		entries[i] = barchart.Entry{Label: bar.Label, Value: bar.Value}
	}
	return barchart.New(entries, append(c.Options(), extra...)...)
}
