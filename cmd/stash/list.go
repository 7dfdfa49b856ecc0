package main

import (
	"fmt"

	"github.com/fwojciec/stash"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := stash.SaveFilter{UserID: &deps.UserID, Limit: c.Limit}
	switch {
	case c.Highlights && c.Pages:
		err := stash.Errorf(stash.EINVALID, "--highlights and --pages are mutually exclusive")
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	case c.Highlights:
		filter.HasHighlight = &c.Highlights
	case c.Pages:
		hasHighlight := false
		filter.HasHighlight = &hasHighlight
	}

	saves, err := deps.Saves.FindSaves(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	if len(saves) == 0 {
		fmt.Fprintln(deps.Stdout, "No saves found. Use 'stash save' to add one.")
		return nil
	}

	for _, s := range saves {
		fmt.Fprintln(deps.Stdout, stash.FormatSaveLine(s))
	}
	return nil
}
