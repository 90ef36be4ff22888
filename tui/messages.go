package tui

import (
	"github.com/young1lin/termchart/internal/dataset"
)

// ChartReloadedMsg is sent when the chart definition has been re-read
type ChartReloadedMsg struct {
	Chart *dataset.Chart
	When  string
}

// ErrorMsg is sent when loading or watching fails
type ErrorMsg struct {
	Err error
}

// WatcherFailedMsg is sent when the file watcher stops working
type WatcherFailedMsg struct {
	Err error
}
