// Package htmltomarkdown converts article HTML to Markdown text for the
// knowledge base.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/ciagent"
)

// Ensure Converter implements ciagent.Converter at compile time.
var _ ciagent.Converter = (*Converter)(nil)

var (
	imagePattern = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter

	// StripLinks replaces Markdown links with their text and drops images.
	StripLinks bool
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// NewTextConverter creates a Converter that keeps document structure but
// drops link targets and images, which only add noise to embedded text.
func NewTextConverter() *Converter {
	c := NewConverter()
	c.StripLinks = true
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", ciagent.Errorf(ciagent.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	if c.StripLinks {
		result = imagePattern.ReplaceAllString(result, "")
		result = linkPattern.ReplaceAllString(result, "$1")
	}

	return result, nil
}
