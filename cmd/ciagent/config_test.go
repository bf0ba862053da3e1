package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/ciagent"
	main "github.com/fwojciec/ciagent/cmd/ciagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(), cfg)
		assert.Equal(t, 500*time.Millisecond, cfg.CrawlDelay)
		assert.Equal(t, ciagent.DefaultTopK, cfg.TopK)
	})

	t.Run("returns defaults for empty path", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(), cfg)
	})

	t.Run("overrides defaults from file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "answer_model: gemini-2.5-pro\ntop_k: 5\ncrawl_delay: 2s\ncount_tokens: false\n")

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", cfg.AnswerModel)
		assert.Equal(t, 5, cfg.TopK)
		assert.Equal(t, 2*time.Second, cfg.CrawlDelay)
		assert.False(t, cfg.CountTokens)
		assert.Equal(t, ciagent.DefaultChunkSize, cfg.ChunkSize)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "top_k: [unclosed\n")

		_, err := main.LoadConfig(path)

		require.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		for _, content := range []string{
			"chunk_size: 0\n",
			"chunk_size: 100\nchunk_overlap: 100\n",
			"top_k: 0\n",
			"crawl_delay: -1s\n",
		} {
			_, err := main.LoadConfig(writeConfig(t, content))

			require.Error(t, err, content)
			assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err), content)
		}
	})
}
