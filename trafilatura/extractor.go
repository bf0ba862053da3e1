// Package trafilatura provides the default ciagent.Extractor, backed by
// go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/ciagent"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements ciagent.Extractor at compile time.
var _ ciagent.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Fallback extraction is enabled so
// pages trafilatura cannot parse on its own still produce text.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract returns the main text content of the page with boilerplate
// removed. Pages with no recognizable content yield an empty string.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", ciagent.Errorf(ciagent.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
