package mock

import "github.com/fwojciec/ciagent"

var _ ciagent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ciagent.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

var _ ciagent.Converter = (*Converter)(nil)

// Converter is a mock implementation of ciagent.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ ciagent.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of ciagent.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
