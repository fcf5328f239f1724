package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
)

// DocumentsSchema is the DDL of the documents table.
const DocumentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
  collection text NOT NULL,
  id text NOT NULL,
  fields jsonb NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now(),
  updated_at timestamptz NOT NULL DEFAULT now(),
  PRIMARY KEY (collection, id)
);
`

// PostgresStore keeps every collection in one documents table with a jsonb
// payload. Lists come back in creation order.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, DocumentsSchema); err != nil {
		return fmt.Errorf("ensure documents schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	const q = `
SELECT id, fields
FROM documents
WHERE collection = $1
ORDER BY created_at, id;
`
	rows, err := s.db.QueryContext(ctx, q, collection)
	if err != nil {
		return nil, fmt.Errorf("postgres list %s: %w", collection, err)
	}
	defer rows.Close()

	out := make([]domain.Document, 0, 16)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("postgres list %s/%s: %w", collection, id, err)
		}
		out = append(out, domain.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	const q = `SELECT fields FROM documents WHERE collection = $1 AND id = $2;`

	var raw []byte
	err := s.db.QueryRowContext(ctx, q, collection, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(collection, id)
		}
		return nil, fmt.Errorf("postgres get %s/%s: %w", collection, id, err)
	}

	fields, err := decodeFields(raw)
	if err != nil {
		return nil, fmt.Errorf("postgres get %s/%s: %w", collection, id, err)
	}
	return &domain.Document{ID: id, Fields: fields}, nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, fields domain.Fields) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fields: %w", err)
	}

	for i := 0; i < 5; i++ {
		id, err := NewDocumentID()
		if err != nil {
			return "", err
		}

		const q = `INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3);`
		_, err = s.db.ExecContext(ctx, q, collection, id, string(payload))
		if err == nil {
			return id, nil
		}

		// unique violation on (collection, id) → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return "", fmt.Errorf("postgres create %s: %w", collection, err)
	}

	return "", fmt.Errorf("failed to generate unique document id")
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields domain.Fields) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	const q = `
UPDATE documents
SET fields = $3, updated_at = now()
WHERE collection = $1 AND id = $2;
`
	result, err := s.db.ExecContext(ctx, q, collection, id, string(payload))
	if err != nil {
		return fmt.Errorf("postgres update %s/%s: %w", collection, id, err)
	}
	return requireOneRow(result, collection, id)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM documents WHERE collection = $1 AND id = $2;`
	result, err := s.db.ExecContext(ctx, q, collection, id)
	if err != nil {
		return fmt.Errorf("postgres delete %s/%s: %w", collection, id, err)
	}
	return requireOneRow(result, collection, id)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func requireOneRow(result sql.Result, collection, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return notFound(collection, id)
	}
	return nil
}

func decodeFields(raw []byte) (domain.Fields, error) {
	fields := domain.Fields{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	return fields, nil
}
