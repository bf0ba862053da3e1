package ciagent

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., article HTML from readability).
	Convert(html string) (string, error)
}
