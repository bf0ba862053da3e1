package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// newTable returns a table with the shared CLI styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// pagesTable renders crawled pages in fetch order.
func pagesTable(pages []ciagent.CrawlPage) string {
	t := newTable("#", "URL", "Text")
	for i, p := range pages {
		text := crawl.FormatBytes(p.Bytes)
		if p.ContentHash == "" {
			text = "-"
		}
		t.Row(strconv.Itoa(i+1), crawl.TruncateURL(p.URL, 70), text)
	}
	return t.String()
}

// collectionsTable renders knowledge bases.
func collectionsTable(collections []*ciagent.Collection) string {
	t := newTable("Company", "Chunks", "Model", "Updated")
	for _, c := range collections {
		t.Row(c.Name, strconv.Itoa(c.ChunkCount), c.EmbeddingModel, c.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return t.String()
}

// renderMarkdown renders text for the terminal, falling back to the raw
// text if rendering fails.
func renderMarkdown(text string, raw bool) string {
	if raw {
		return text
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// errorText renders an error the way remote failures are shown in answers.
func errorText(err error) string {
	return fmt.Sprintf("### 🚨 Error\n**%s**", ciagent.ErrorMessage(err))
}

// startSpinner shows a spinner on w. The spinner only draws when w is a
// terminal.
func startSpinner(w io.Writer, suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()
	return s
}
