package main

import (
	"fmt"

	"github.com/fwojciec/ciagent"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	companyID, err := ciagent.ResolveCompany(c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	spin := startSpinner(deps.Stderr, "Thinking...")
	answer, err := deps.Asker.Ask(deps.Ctx, companyID, c.Question)
	spin.Stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	if c.ShowContext {
		fmt.Fprintln(deps.Stdout, "Context:")
		for i, passage := range answer.Context {
			fmt.Fprintf(deps.Stdout, "[%d] %s\n\n", i+1, passage)
		}
	}

	fmt.Fprintln(deps.Stdout, renderMarkdown(answer.Text, c.Raw))
	return nil
}
