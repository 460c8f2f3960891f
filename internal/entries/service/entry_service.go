package service

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/events"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/repository"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/logging"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/metrics"
)

// EntryService handles business logic for stored entries
type EntryService struct {
	store     repository.Store
	publisher events.Publisher
	limit     int64
}

// NewEntryService creates a new EntryService. A nil publisher disables events.
func NewEntryService(store repository.Store, publisher events.Publisher) *EntryService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &EntryService{
		store:     store,
		publisher: publisher,
		limit:     config.FetchLimit,
	}
}

// StoreEntry writes exactly one document and returns its identifier.
// Store failures are returned as-is; nothing is retried.
func (s *EntryService) StoreEntry(ctx context.Context, entry domain.Entry) (string, error) {
	if s.store == nil {
		return "", domain.ErrNoStore
	}
	if entry.Content == nil {
		return "", domain.ErrInvalidEntry
	}

	logger := logging.NewLogger(ctx)

	id, err := s.store.Insert(ctx, entry)
	if err != nil {
		metrics.RecordStoreError("store")
		logger.LogError("store_entry", err)
		return "", err
	}
	metrics.EntriesStored.Inc()
	logger.LogDebugf("store_entry", "id=%s title=%q", id, entry.Title)

	// The document is already written; a lost notification is only logged.
	ev := events.EntryStored{ID: id, Title: entry.Title, StoredAt: time.Now().UTC()}
	if err := s.publisher.PublishStored(ctx, ev); err != nil {
		logger.LogWarnf("store_entry", "event not published id=%s error=%v", id, err)
	}

	return id, nil
}

// FetchEntries returns up to the fetch limit of documents in store order.
func (s *EntryService) FetchEntries(ctx context.Context) ([]domain.Document, error) {
	if s.store == nil {
		return nil, domain.ErrNoStore
	}

	logger := logging.NewLogger(ctx)

	docs, err := s.store.List(ctx, s.limit)
	if err != nil {
		metrics.RecordStoreError("fetch")
		logger.LogError("fetch_entries", err)
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	metrics.EntriesFetched.Add(float64(len(docs)))
	logger.LogDebugf("fetch_entries", "count=%d", len(docs))

	return docs, nil
}

// Ping checks store connectivity
func (s *EntryService) Ping(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNoStore
	}
	return s.store.Ping(ctx)
}
