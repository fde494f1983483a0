package main

import (
	"fmt"

	"github.com/esoxjem/luego"
	"github.com/esoxjem/luego/batch"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Saving %d articles\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Saver.SaveAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", luego.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d articles (%d words)\n",
		result.Saved, len(c.URLs), result.Words)

	if result.Failed > 0 {
		return luego.Errorf(luego.EINTERNAL, "%d of %d articles failed", result.Failed, len(c.URLs))
	}
	return nil
}
