package main

import (
	"fmt"

	"github.com/fwojciec/ciagent"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ciagent.Errorf(ciagent.EINVALID, "use --force to confirm deletion")
	}

	companyID, err := ciagent.ResolveCompany(c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, companyID); err != nil {
		if ciagent.ErrorCode(err) == ciagent.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: knowledge base %q not found. Use 'ciagent list' to see available knowledge bases.\n", companyID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Crawls.DeleteCrawls(deps.Ctx, companyID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted knowledge base %q\n", companyID)
	return nil
}
