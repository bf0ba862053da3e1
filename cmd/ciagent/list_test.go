package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/ciagent"
	main "github.com/fwojciec/ciagent/cmd/ciagent"
	"github.com/fwojciec/ciagent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists knowledge bases", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		deps.Collections = &mock.CollectionService{
			FindCollectionsFn: func(context.Context) ([]*ciagent.Collection, error) {
				return []*ciagent.Collection{
					{Name: "acme_com", EmbeddingModel: "gemini-embedding-001", ChunkCount: 42, UpdatedAt: time.Now()},
					{Name: "globex_io", EmbeddingModel: "gemini-embedding-001", ChunkCount: 7, UpdatedAt: time.Now()},
				}, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Company")
		assert.Contains(t, output, "acme_com")
		assert.Contains(t, output, "42")
		assert.Contains(t, output, "globex_io")
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		deps.Collections = &mock.CollectionService{
			FindCollectionsFn: func(context.Context) ([]*ciagent.Collection, error) {
				return nil, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No knowledge bases found.")
	})

	t.Run("returns storage errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Collections = &mock.CollectionService{
			FindCollectionsFn: func(context.Context) ([]*ciagent.Collection, error) {
				return nil, errors.New("disk I/O error")
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}
