package goquery_test

import (
	"testing"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LinkExtractor implements ciagent.LinkExtractor at compile time.
var _ ciagent.LinkExtractor = (*goquery.LinkExtractor)(nil)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/about">About</a><a href="/products">Products</a></nav>
<main><a href="/careers">Careers</a></main>
<footer><a href="/contact">Contact</a></footer>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://acme.com/about",
			"https://acme.com/products",
			"https://acme.com/careers",
			"https://acme.com/contact",
		}, links)
	})

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<a href="team">Team</a><a href="../press">Press</a><a href="//acme.com/blog">Blog</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/about/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://acme.com/about/team",
			"https://acme.com/press",
			"https://acme.com/blog",
		}, links)
	})

	t.Run("strips fragments and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/about#team">Team</a><a href="/about#history">History</a><a href="/about">About</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://acme.com/about"}, links)
	})

	t.Run("keeps external links for the caller to filter", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://twitter.com/acme">Twitter</a><a href="https://blog.acme.com/">Blog</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://twitter.com/acme", "https://blog.acme.com/"}, links)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="mailto:sales@acme.com">Mail</a>
<a href="tel:+15555550100">Call</a>
<a href="javascript:void(0)">Menu</a>
<a href="ftp://acme.com/files">Files</a>
<a href="/pricing">Pricing</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://acme.com/pricing"}, links)
	})

	t.Run("skips empty and self-referential links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="">Empty</a><a href="#top">Top</a><a href="/">Home</a><a>No href</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("custom selector limits inspected elements", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/about">About</a></nav><footer><a href="/legal">Legal</a></footer>`

		ext := &goquery.LinkExtractor{Selector: "nav a[href]"}
		links, err := ext.ExtractLinks(html, "https://acme.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://acme.com/about"}, links)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<a href='/x'>x</a>", "://bad")

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
	})
}
