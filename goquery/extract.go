// Package goquery provides a ciagent.LinkExtractor backed by goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ciagent"
)

// Ensure LinkExtractor implements ciagent.LinkExtractor at compile time.
var _ ciagent.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts the targets of all anchors in a page.
type LinkExtractor struct {
	// Selector chooses which elements are inspected for an href.
	// Defaults to every anchor.
	Selector string
}

// NewLinkExtractor creates a LinkExtractor that inspects every anchor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{Selector: "a[href]"}
}

// ExtractLinks returns every link in the page resolved against baseURL, in
// document order, without fragments and without duplicates. Links with
// non-HTTP schemes and links back to baseURL itself are skipped. Host
// filtering is left to the caller.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, ciagent.Errorf(ciagent.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ciagent.Errorf(ciagent.EINVALID, "failed to parse HTML: %v", err)
	}

	selector := e.Selector
	if selector == "" {
		selector = "a[href]"
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed, does not resolve to an
// http(s) URL, or points back at the base URL.
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	baseNoFragment.RawFragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
