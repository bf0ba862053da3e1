package ciagent

// Extractor extracts the main readable text from an HTML page, removing
// boilerplate such as navigation, footers and ads.
type Extractor interface {
	// Extract returns the main text of the page. An empty string means
	// nothing readable was found. Callers treat errors the same as empty
	// text.
	Extract(html string) (string, error)
}
