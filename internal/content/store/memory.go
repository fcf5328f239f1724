package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// MemoryStore keeps documents in process. Lists come back in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	order []string
	docs  map[string]domain.Fields
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[collection]
	if !ok {
		return []domain.Document{}, nil
	}
	out := make([]domain.Document, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, domain.Document{ID: id, Fields: col.docs[id].Clone()})
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.lookup(collection, id)
	if !ok {
		return nil, notFound(collection, id)
	}
	return &domain.Document{ID: id, Fields: fields.Clone()}, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, fields domain.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = &memCollection{docs: make(map[string]domain.Fields)}
		s.collections[collection] = col
	}

	id := uuid.NewString()
	col.order = append(col.order, id)
	col.docs[id] = fields.Clone()
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(collection, id); !ok {
		return notFound(collection, id)
	}
	s.collections[collection].docs[id] = fields.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(collection, id); !ok {
		return notFound(collection, id)
	}
	col := s.collections[collection]
	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// caller holds s.mu
func (s *MemoryStore) lookup(collection, id string) (domain.Fields, bool) {
	col, ok := s.collections[collection]
	if !ok {
		return nil, false
	}
	f, ok := col.docs[id]
	return f, ok
}

func notFound(collection, id string) error {
	return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
}
