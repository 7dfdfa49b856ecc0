package main

import (
	"fmt"

	"github.com/fwojciec/stash"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	s, err := findUserSave(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, stash.FormatSave(s))
	return nil
}

// findUserSave looks up a save owned by the current user. Saves owned by
// other users are reported as missing.
func findUserSave(deps *Dependencies, id string) (*stash.Save, error) {
	s, err := deps.Saves.FindSaveByID(deps.Ctx, id)
	if err != nil {
		return nil, err
	}
	if s.UserID != deps.UserID {
		return nil, stash.Errorf(stash.ENOTFOUND, "save %q not found", id)
	}
	return s, nil
}
