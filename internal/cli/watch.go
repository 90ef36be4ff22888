package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/young1lin/termchart/internal/dataset"
	"github.com/young1lin/termchart/internal/watch"
	"github.com/young1lin/termchart/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea
// program. It exists so the watch loop can be tested without a real
// terminal.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// watchDeps contains the dependencies for the watch command, injectable
// for testing.
type watchDeps struct {
	LoadChart      func(string) (*dataset.Chart, error)
	WatcherCreator func(string) (watch.Interface, error)
	ProgramRunner  func(*tea.Program) error
}

func defaultWatchDeps() *watchDeps {
	return &watchDeps{
		LoadChart: dataset.Load,
		WatcherCreator: func(path string) (watch.Interface, error) {
			return watch.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}
}

// newWatchCmd creates the watch command: a full-screen viewer that
// re-renders the chart whenever the file changes.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a chart file and re-render on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("watching chart file", "path", args[0])
			return runWatch(args[0], defaultWatchDeps())
		},
	}
}

func runWatch(path string, deps *watchDeps) error {
	chart, err := deps.LoadChart(path)
	if err != nil {
		return fmt.Errorf("failed to load chart: %w", err)
	}

	watcher, err := deps.WatcherCreator(path)
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	reload := func() tea.Msg { return reloadChart(path, deps.LoadChart) }
	model := tui.NewModel(path, chart, reload)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go runWatchLoop(p, watcher, path, deps.LoadChart)

	return deps.ProgramRunner(p)
}

// runWatchLoop forwards file events to the program until the watcher
// closes.
func runWatchLoop(sender ProgramSender, watcher watch.Interface, path string, load func(string) (*dataset.Chart, error)) {
	for {
		select {
		case _, ok := <-watcher.Changes():
			if !ok {
				return
			}
			sender.Send(reloadChart(path, load))
		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: err})
		}
	}
}

// reloadChart re-reads the chart file and wraps the result in the
// message the viewer expects.
func reloadChart(path string, load func(string) (*dataset.Chart, error)) tea.Msg {
	chart, err := load(path)
	if err != nil {
		return tui.ErrorMsg{Err: err}
	}
	return tui.ChartReloadedMsg{Chart: chart, When: time.Now().Format("15:04:05")}
}
