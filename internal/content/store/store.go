package store

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// Store is the document-store contract shared by every backend.
//
// List returns documents in backend-defined order. Get, Update and Delete
// return an error wrapping domain.ErrNotFound when the id is absent.
// Update replaces the whole document; there is no patch semantics and the
// last writer wins.
type Store interface {
	List(ctx context.Context, collection string) ([]domain.Document, error)
	Get(ctx context.Context, collection, id string) (*domain.Document, error)
	Create(ctx context.Context, collection string, fields domain.Fields) (string, error)
	Update(ctx context.Context, collection, id string, fields domain.Fields) error
	Delete(ctx context.Context, collection, id string) error
}

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
