package main

import (
	"fmt"

	"github.com/fwojciec/stash"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return stash.Errorf(stash.EINVALID, "use --force to confirm deletion")
	}

	s, err := findUserSave(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	if err := deps.Saves.DeleteSave(deps.Ctx, s.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted save %q\n", s.Title)
	return nil
}
