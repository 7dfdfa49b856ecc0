package main

import (
	"fmt"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/fs"
	"github.com/fwojciec/stash/save"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Saver.Concurrency = c.Concurrency
	}
	deps.Saver.RateLimiter = save.NewDomainLimiter(c.Rate, c.Burst)
	if c.Archive != "" {
		deps.Saver.Archive = fs.NewExporter(c.Archive)
	}

	reqs := make([]save.Request, len(c.URLs))
	for i, u := range c.URLs {
		reqs[i] = save.Request{
			UserID:    deps.UserID,
			URL:       u,
			Highlight: c.Highlight,
			Source:    c.Source,
		}
	}

	progress := func(event save.ProgressEvent) {
		if event.Type == save.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, stash.ErrorMessage(event.Error))
		}
	}

	var saved, failed int
	for _, r := range deps.Saver.SaveAll(deps.Ctx, reqs, progress) {
		switch {
		case r.Skipped:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", r.Request.URL)
		case r.Err != nil && r.Save == nil:
			failed++
		default:
			// An archive failure still leaves the save stored.
			saved++
			fmt.Fprintln(deps.Stdout, stash.FormatSaveLine(r.Save))
		}
	}

	if failed > 0 {
		err := stash.Errorf(stash.ENOCONTENT, "%d of %d pages could not be saved", failed, len(reqs))
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d pages\n", saved)
	return nil
}
