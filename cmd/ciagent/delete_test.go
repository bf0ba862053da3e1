package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/ciagent"
	main "github.com/fwojciec/ciagent/cmd/ciagent"
	"github.com/fwojciec/ciagent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes knowledge base and crawls", func(t *testing.T) {
		t.Parallel()

		var deletedCollection, deletedCrawls string
		deps, stdout, _ := newTestDeps()
		deps.Collections = &mock.CollectionService{
			DeleteCollectionFn: func(_ context.Context, name string) error {
				deletedCollection = name
				return nil
			},
		}
		deps.Crawls = &mock.CrawlService{
			DeleteCrawlsFn: func(_ context.Context, companyID string) error {
				deletedCrawls = companyID
				return nil
			},
		}

		err := (&main.DeleteCmd{Company: "acme.com", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "acme_com", deletedCollection)
		assert.Equal(t, "acme_com", deletedCrawls)
		assert.Equal(t, "Deleted knowledge base \"acme_com\"\n", stdout.String())
	})

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Collections = &mock.CollectionService{
			DeleteCollectionFn: func(context.Context, string) error {
				t.Fatal("should not delete without --force")
				return nil
			},
		}

		err := (&main.DeleteCmd{Company: "acme_com"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing knowledge base", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Collections = &mock.CollectionService{
			DeleteCollectionFn: func(context.Context, string) error {
				return ciagent.Errorf(ciagent.ENOTFOUND, "knowledge base not found")
			},
		}

		err := (&main.DeleteCmd{Company: "acme_com", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ciagent.ENOTFOUND, ciagent.ErrorCode(err))
		assert.Contains(t, stderr.String(), "ciagent list")
	})
}
