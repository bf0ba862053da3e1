// Package fs exports crawled pages to the local filesystem.
package fs

import (
	"net/url"
	"strings"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/about/team → about/team.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}
