package main

import (
	"fmt"

	"github.com/fwojciec/ciagent"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No knowledge bases found. Use 'ciagent build <url>' to create one.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, collectionsTable(collections))
	return nil
}
