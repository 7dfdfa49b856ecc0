package main

import (
	"fmt"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	saves, err := deps.Saves.FindSaves(deps.Ctx, stash.SaveFilter{UserID: &deps.UserID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	export := fs.NewStagedExport(c.Dir)
	for _, s := range saves {
		if err := export.WriteSave(deps.Ctx, s); err != nil {
			_ = export.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %v\n", s.ID, err)
			return err
		}
	}
	if err := export.Commit(); err != nil {
		_ = export.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d saves to %s\n", len(saves), c.Dir)
	return nil
}
