package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostgresStore keeps entries as JSONB rows. IDs are ObjectID hex strings so
// callers see the same identifier shape as with MongoStore.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgresStore creates a store over table (quoted as an identifier)
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{db: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the backing table when missing
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id         TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, s.table)

	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.table, err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, entry domain.Entry) (string, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to marshal entry: %w", err)
	}

	id := primitive.NewObjectID().Hex()
	q := fmt.Sprintf(`INSERT INTO %s (id, body) VALUES ($1, $2)`, s.table)
	if _, err := s.db.ExecContext(ctx, q, id, body); err != nil {
		return "", fmt.Errorf("failed to insert entry: %w", err)
	}

	return id, nil
}

func (s *PostgresStore) List(ctx context.Context, limit int64) ([]domain.Document, error) {
	q := fmt.Sprintf(`SELECT id, body FROM %s LIMIT $1`, s.table)
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Document, 0, 16)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		obj, err := domain.DecodeObject(body)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", id, err)
		}

		doc := domain.Document{domain.IDField: id}
		for k, v := range obj {
			if k != domain.IDField {
				doc[k] = v
			}
		}
		out = append(out, doc)
	}

	return out, rows.Err()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
