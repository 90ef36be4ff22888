package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/young1lin/termchart/barchart"
	"github.com/young1lin/termchart/internal/config"
	"github.com/young1lin/termchart/internal/store"
)

// newRecordCmd creates the record command, which appends one sample to
// a named series in the local database.
func newRecordCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "record <series> <label> <value>",
		Short: "Record a sample in a series",
		Example: `  termchart record load cpu 42
  termchart record load mem 17.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}

			db, err := store.Open(databasePath(dbPath))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			sample := store.Sample{Series: args[0], Label: args[1], Value: value}
			if err := db.Record(sample); err != nil {
				return fmt.Errorf("failed to record sample: %w", err)
			}

			logger.Info("sample recorded", "series", args[0], "label", args[1], "value", value)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database file (default: the user cache directory)")
	return cmd
}

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	dbPath   string
	width    int
	vertical bool
	noValues bool
}

// newShowCmd creates the show command, which charts the latest sample
// per label of a recorded series.
func newShowCmd() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show <series>",
		Short: "Chart the latest samples of a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(databasePath(opts.dbPath))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			samples, err := db.Latest(args[0])
			if err != nil {
				return fmt.Errorf("failed to read series: %w", err)
			}
			if len(samples) == 0 {
				return fmt.Errorf("series %q has no samples", args[0])
			}

			entries := make([]barchart.Entry, len(samples))
			for i, s := range samples {
				entries[i] = barchart.Entry{Label: s.Label, Value: s.Value}
			}

			chartOpts := []barchart.Option{barchart.WithShowValues(!opts.noValues)}
			if opts.vertical {
				chartOpts = append(chartOpts, barchart.WithOrientation(barchart.Vertical))
			}
			if opts.width > 0 {
				chartOpts = append(chartOpts, barchart.WithWidth(opts.width))
			}

			chart, err := barchart.New(entries, chartOpts...)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), chart.View(defaultViewWidth, defaultViewHeight))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dbPath, "db", "", "database file (default: the user cache directory)")
	flags.IntVarP(&opts.width, "width", "w", 0, "chart width in columns")
	flags.BoolVar(&opts.vertical, "vertical", false, "draw columns bottom-up instead of rows")
	flags.BoolVar(&opts.noValues, "no-values", false, "hide the numeric value column")

	return cmd
}

func databasePath(override string) string {
	if override != "" {
		return override
	}
	return config.SampleDBPath()
}
