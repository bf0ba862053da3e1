package ciagent_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/ciagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	t.Parallel()

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		chunks, err := ciagent.SplitText("", 500, 50)

		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("whitespace-only text yields no chunks", func(t *testing.T) {
		t.Parallel()

		chunks, err := ciagent.SplitText(" \n\n\t ", 500, 50)

		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("short text is a single chunk", func(t *testing.T) {
		t.Parallel()

		chunks, err := ciagent.SplitText("Acme builds rockets.", 500, 50)

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme builds rockets."}, chunks)
	})

	t.Run("prefers paragraph boundaries", func(t *testing.T) {
		t.Parallel()

		first := strings.Repeat("a", 30)
		second := strings.Repeat("b", 30)
		chunks, err := ciagent.SplitText(first+"\n\n"+second, 40, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, chunks)
	})

	t.Run("chunks never exceed size", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		for i := range 400 {
			fmt.Fprintf(&sb, "word%d ", i)
			if i%37 == 0 {
				sb.WriteString("\n\n")
			}
		}
		chunks, err := ciagent.SplitText(sb.String(), 100, 20)

		require.NoError(t, err)
		require.NotEmpty(t, chunks)
		for _, c := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(c), 100)
			assert.NotEmpty(t, c)
		}
	})

	t.Run("consecutive chunks overlap", func(t *testing.T) {
		t.Parallel()

		words := make([]string, 200)
		for i := range words {
			words[i] = fmt.Sprintf("w%03d", i)
		}
		chunks, err := ciagent.SplitText(strings.Join(words, " "), 50, 10)

		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)
		for i := 1; i < len(chunks); i++ {
			firstWord := strings.Fields(chunks[i])[0]
			assert.Contains(t, chunks[i-1], firstWord, "chunk %d should start with context from chunk %d", i, i-1)
		}
	})

	t.Run("falls back to characters for unbroken text", func(t *testing.T) {
		t.Parallel()

		chunks, err := ciagent.SplitText(strings.Repeat("x", 250), 100, 10)

		require.NoError(t, err)
		require.Len(t, chunks, 3)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 100)
		}
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		chunks, err := ciagent.SplitText(strings.Repeat("é", 90), 100, 10)

		require.NoError(t, err)
		assert.Len(t, chunks, 1)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		t.Parallel()

		_, err := ciagent.SplitText("text", 0, 0)

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
	})

	t.Run("rejects overlap not smaller than size", func(t *testing.T) {
		t.Parallel()

		_, err := ciagent.SplitText("text", 50, 50)

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
	})
}
