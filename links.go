package ciagent

// LinkExtractor finds hyperlinks in HTML.
type LinkExtractor interface {
	// ExtractLinks returns the href of every anchor in the page resolved
	// against baseURL, with fragments stripped. Links with non-HTTP schemes
	// (mailto:, javascript:, ...) are dropped. Order follows the document
	// and duplicates are removed.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
