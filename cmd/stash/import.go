package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/stash"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	highlights, err := readHighlights(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	result, err := deps.Importer.Import(deps.Ctx, deps.UserID, highlights)
	if err != nil {
		var batchErr *stash.BatchError
		if errors.As(err, &batchErr) && result != nil {
			fmt.Fprintf(deps.Stderr, "error: import stopped after %d highlights: %s\n", result.Imported, stash.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", stash.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Message())
	return nil
}

func readHighlights(path string) ([]stash.Highlight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var highlights []stash.Highlight
	if err := json.Unmarshal(data, &highlights); err != nil {
		return nil, stash.Errorf(stash.EMALFORMED, "invalid highlights file: %v", err)
	}
	return highlights, nil
}
