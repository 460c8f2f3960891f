package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"
)

// Store persists entries. Implementations hold one long-lived handle shared
// by all requests and are safe for concurrent use.
type Store interface {
	// Insert writes one new document and returns its identifier as a string.
	Insert(ctx context.Context, entry domain.Entry) (string, error)
	// List returns at most limit documents in backend order. No sort is applied.
	List(ctx context.Context, limit int64) ([]domain.Document, error)
	Ping(ctx context.Context) error
}
