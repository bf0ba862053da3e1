package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements ciagent.Converter at compile time.
var _ ciagent.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Acme</h1><h2>Products</h2><p>Rockets and anvils.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Acme")
		assert.Contains(t, md, "## Products")
		assert.Contains(t, md, "Rockets and anvils.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://acme.com/pricing">our pricing</a> page.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[our pricing](https://acme.com/pricing)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Rockets</li><li>Anvils</li></ul><ol><li>Order</li><li>Pay</li></ol>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Rockets")
		assert.Contains(t, md, "- Anvils")
		assert.Contains(t, md, "1. Order")
		assert.Contains(t, md, "2. Pay")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Plan</th><th>Price</th></tr></thead>
<tbody><tr><td>Starter</td><td>$10</td></tr><tr><td>Enterprise</td><td>$99</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Plan")
		assert.Contains(t, md, "Enterprise")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
	})
}

func TestTextConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("keeps link text and drops targets", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://acme.com/pricing">our pricing</a> page.</p>`

		md, err := htmltomarkdown.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "See our pricing page.")
		assert.NotContains(t, md, "https://acme.com/pricing")
	})

	t.Run("drops images", func(t *testing.T) {
		t.Parallel()

		html := `<p>Our factory <img src="/factory.png" alt="factory"> in Phoenix.</p>`

		md, err := htmltomarkdown.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "factory.png")
		assert.Contains(t, md, "in Phoenix.")
	})
}
