// Package readability provides an alternative ciagent.Extractor backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/ciagent"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements ciagent.Extractor at compile time.
var _ ciagent.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
// When a Converter is set, the article HTML is converted to Markdown so
// headings, lists and tables keep their structure in the text. Otherwise
// the article's plain text is used.
type Extractor struct {
	Converter ciagent.Converter
}

// NewExtractor creates a new Extractor. conv may be nil.
func NewExtractor(conv ciagent.Converter) *Extractor {
	return &Extractor{Converter: conv}
}

// Extract returns the main text content of the page.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", ciagent.Errorf(ciagent.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	if e.Converter != nil && strings.TrimSpace(article.Content) != "" {
		md, err := e.Converter.Convert(article.Content)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(md), nil
	}

	return strings.TrimSpace(article.TextContent), nil
}
