package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/young1lin/termchart/internal/update"
)

// Execute runs the termchart CLI and returns an error if any command
// fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and retrieved
// by subcommands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "termchart",
		Short:        "termchart draws bar charts in the terminal",
		Long:         `termchart renders labelled values as Unicode bar charts, either one-shot to stdout or as a live view that follows a chart file.`,
		Version:      update.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("termchart %s\ncommit: %s\nbuilt: %s\n",
		update.Version, update.Commit, update.BuildDate))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newRecordCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newVersionCmd())

	return root.Execute()
}

// newVersionCmd reports the build information baked in at link time.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termchart %s\ncommit: %s\nbuilt: %s\n",
				update.Version, update.Commit, update.BuildDate)
		},
	}
}
