package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore(), domain.CollectionProjects)
}

func TestMemoryStore_ListKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		id, err := s.Create(ctx, domain.CollectionExperiences, domain.Fields{"role": title})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, s.Delete(ctx, domain.CollectionExperiences, ids[1]))

	docs, err := s.List(ctx, domain.CollectionExperiences)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, ids[0], docs[0].ID)
	assert.Equal(t, ids[2], docs[1].ID)
}

func TestMemoryStore_EmptyCollection(t *testing.T) {
	docs, err := NewMemoryStore().List(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	input := domain.Fields{"title": "original"}
	id, err := s.Create(ctx, domain.CollectionProjects, input)
	require.NoError(t, err)
	input["title"] = "mutated"

	doc, err := s.Get(ctx, domain.CollectionProjects, id)
	require.NoError(t, err)
	assert.Equal(t, "original", doc.Fields.String("title"))

	doc.Fields["title"] = "mutated again"
	again, err := s.Get(ctx, domain.CollectionProjects, id)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Fields.String("title"))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().List(ctx, domain.CollectionProjects)
	assert.ErrorIs(t, err, context.Canceled)
}
