package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// runStoreContract exercises the behaviour every Store backend must share.
func runStoreContract(t *testing.T, s Store, collection string) {
	t.Helper()
	ctx := context.Background()

	t.Run("create then get returns the stored fields", func(t *testing.T) {
		id, err := s.Create(ctx, collection, domain.Fields{"title": "Pipeline", "techStack": []string{"Go", "Docker"}})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		doc, err := s.Get(ctx, collection, id)
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, "Pipeline", doc.Fields.String("title"))
		assert.Equal(t, []string{"Go", "Docker"}, doc.Fields.Strings("techStack"))
	})

	t.Run("update keeps the id and replaces the document", func(t *testing.T) {
		id, err := s.Create(ctx, collection, domain.Fields{"title": "Old", "extra": "gone"})
		require.NoError(t, err)

		require.NoError(t, s.Update(ctx, collection, id, domain.Fields{"title": "New"}))

		doc, err := s.Get(ctx, collection, id)
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, "New", doc.Fields.String("title"))
		_, hasExtra := doc.Fields["extra"]
		assert.False(t, hasExtra)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		id, err := s.Create(ctx, collection, domain.Fields{"title": "Temp"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, collection, id))

		_, err = s.Get(ctx, collection, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		docs, err := s.List(ctx, collection)
		require.NoError(t, err)
		for _, d := range docs {
			assert.NotEqual(t, id, d.ID)
		}
	})

	t.Run("missing ids fail", func(t *testing.T) {
		_, err := s.Get(ctx, collection, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, s.Update(ctx, collection, "does-not-exist", domain.Fields{"title": "x"}), domain.ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, collection, "does-not-exist"), domain.ErrNotFound)
	})
}
