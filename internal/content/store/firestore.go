package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// FirestoreStore maps collections one-to-one onto Cloud Firestore
// collections. Lists come back ordered by document id.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore list %s: %w", collection, err)
	}

	out := make([]domain.Document, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, domain.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return out, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, notFound(collection, id)
		}
		return nil, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}
	return &domain.Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, fields domain.Fields) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, map[string]interface{}(fields))
	if err != nil {
		return "", fmt.Errorf("firestore create %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Update overwrites the document inside a transaction so that a missing id
// fails instead of being created by Set.
func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	ref := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			return err
		}
		return tx.Set(ref, map[string]interface{}(fields))
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return notFound(collection, id)
		}
		return fmt.Errorf("firestore update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return notFound(collection, id)
		}
		return fmt.Errorf("firestore delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collection(domain.CollectionProjects).Limit(1).Documents(ctx).GetAll()
	return err
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
