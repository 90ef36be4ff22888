package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/young1lin/termchart/barchart"
	"github.com/young1lin/termchart/internal/dataset"
)

const (
	defaultViewWidth  = 80 // columns used when no width is given
	defaultViewHeight = 24 // rows offered to vertical charts
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	width      int
	maxValue   float64
	barWidth   int
	vertical   bool
	height     int
	noValues   bool
	style      string
	barStyles  []string
	labelStyle string
	valueStyle string
}

// newRenderCmd creates the render command. It accepts either a single
// TOML chart file or inline label=value pairs and writes the chart to
// stdout once.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file | label=value ...]",
		Short: "Render a bar chart to stdout",
		Example: `  termchart render chart.toml
  termchart render cpu=42 mem=17.5 disk=88
  termchart render --vertical --height 8 3 1 4 1 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			definition, err := loadChart(args)
			if err != nil {
				return err
			}
			logger.Debug("chart loaded", "bars", len(definition.Bars))

			chart, err := definition.Build(opts.overrides(cmd)...)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), chart.View(opts.viewWidth(), opts.viewHeight()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.width, "width", "w", 0, "chart width in columns (0 fills the default view)")
	flags.Float64VarP(&opts.maxValue, "max-value", "m", 0, "fixed scale maximum (default: largest value)")
	flags.IntVar(&opts.barWidth, "bar-width", 1, "glyph cells per value unit (horizontal) or per column (vertical)")
	flags.BoolVar(&opts.vertical, "vertical", false, "draw columns bottom-up instead of rows")
	flags.IntVar(&opts.height, "height", 0, "rows for vertical bars (0 uses the default)")
	flags.BoolVar(&opts.noValues, "no-values", false, "hide the numeric value column")
	flags.StringVar(&opts.style, "style", "", "style for every bar (e.g. \"bold magenta\")")
	flags.StringSliceVar(&opts.barStyles, "bar-style", nil, "per-bar styles, cycled (repeatable)")
	flags.StringVar(&opts.labelStyle, "label-style", "", "style for the label column")
	flags.StringVar(&opts.valueStyle, "value-style", "", "style for the value column")

	return cmd
}

// loadChart reads a chart definition from a TOML file when the single
// argument names one, otherwise parses the arguments as inline data.
func loadChart(args []string) (*dataset.Chart, error) {
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			return dataset.Load(args[0])
		}
	}
	return dataset.FromArgs(args)
}

// overrides converts the flags the user actually set into chart
// options, so file-level settings survive unless overridden.
func (o *renderOpts) overrides(cmd *cobra.Command) []barchart.Option {
	var opts []barchart.Option
	flags := cmd.Flags()

	if flags.Changed("width") {
		opts = append(opts, barchart.WithWidth(o.width))
	}
	if flags.Changed("max-value") {
		opts = append(opts, barchart.WithMaxValue(o.maxValue))
	}
	if flags.Changed("bar-width") {
		opts = append(opts, barchart.WithBarWidth(o.barWidth))
	}
	if flags.Changed("vertical") {
		orientation := barchart.Horizontal
		if o.vertical {
			orientation = barchart.Vertical
		}
		opts = append(opts, barchart.WithOrientation(orientation))
	}
	if flags.Changed("height") {
		opts = append(opts, barchart.WithHeight(o.height))
	}
	if flags.Changed("no-values") {
		opts = append(opts, barchart.WithShowValues(!o.noValues))
	}
	if flags.Changed("style") {
		opts = append(opts, barchart.WithStyle(o.style))
	}
	if len(o.barStyles) > 0 {
		opts = append(opts, barchart.WithBarStyles(o.barStyles...))
	}
	if flags.Changed("label-style") {
		opts = append(opts, barchart.WithLabelStyle(o.labelStyle))
	}
	if flags.Changed("value-style") {
		opts = append(opts, barchart.WithValueStyle(o.valueStyle))
	}

	return opts
}

// viewWidth returns the width offered to View when rendering one-shot.
func (o *renderOpts) viewWidth() int {
	if o.width > 0 {
		return o.width
	}
	return defaultViewWidth
}

// viewHeight returns the height offered to View.
func (o *renderOpts) viewHeight() int {
	if o.height > 0 {
		return o.height
	}
	return defaultViewHeight
}
