package main

import (
	"fmt"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	companyID, err := ciagent.ResolveCompany(c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	record, err := deps.Crawls.FindLatestCrawl(deps.Ctx, companyID)
	if ciagent.ErrorCode(err) == ciagent.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %q has not been crawled. Use 'ciagent build <url>' first.\n", companyID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl of %s on %s: %d pages, %d failed, %s\n",
		record.StartURL,
		record.StartedAt.Local().Format("2006-01-02 15:04"),
		len(record.Pages),
		record.Failed,
		crawl.FormatBytes(record.CorpusBytes),
	)
	if len(record.Pages) > 0 {
		fmt.Fprintln(deps.Stdout, pagesTable(record.Pages))
	}
	return nil
}
