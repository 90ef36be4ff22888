package main

import (
	"fmt"
	"os"

	"github.com/young1lin/termchart/internal/cli"
	"github.com/young1lin/termchart/internal/update"
)

func main() {
	// Check for a newer release in the background. Failures are
	// silent; a hit is reported on stderr after the command runs.
	notice := make(chan *update.ReleaseInfo, 1)
	go func() {
		checker := update.NewChecker(update.Version)
		release, err := checker.Check()
		if err != nil {
			notice <- nil
			return
		}
		notice <- release
	}()

	err := cli.Execute()

	select {
	case release := <-notice:
		if release != nil {
			fmt.Fprintf(os.Stderr, "\nUpdate available: %s -> %s\n", update.Version, release.TagName)
			fmt.Fprintf(os.Stderr, "Visit %s to download\n", release.HTMLURL)
		}
	default:
	}

	if err != nil {
		os.Exit(1)
	}
}
