package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store persists analytics events and counters. Implementations live in
// pkg/store; tests use in-memory fakes.
type Store interface {
	// BlockIDBySlug resolves a slug to its stored block id. The bool is
	// false when no row exists for the slug.
	BlockIDBySlug(ctx context.Context, slug string) (uuid.UUID, bool, error)
	InsertEvent(ctx context.Context, event Event) error
	IncrementStat(ctx context.Context, blockID uuid.UUID, action Action) error
	// BlockStats returns the counters for a slug. The bool is false when
	// no row exists.
	BlockStats(ctx context.Context, slug string) (Stats, bool, error)
}

// Service records events against a Store. A nil store turns every call
// into a successful no-op, so callers never branch on whether analytics
// is configured.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates an analytics service over the given store.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Track records one interaction with a block. A slug the store does not
// know is skipped without error. The counter bump is best effort: the
// event row is the source of truth, the counter only speeds up reads.
func (s *Service) Track(ctx context.Context, slug string, action Action, userID *string, metadata map[string]any) error {
	if !action.Valid() {
		return fmt.Errorf("invalid analytics action %q", action)
	}
	if s.store == nil {
		return nil
	}

	blockID, ok, err := s.store.BlockIDBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("resolve block %q: %w", slug, err)
	}
	if !ok {
		s.logger.Debug("skipping analytics for unknown block", "slug", slug)
		return nil
	}

	event := Event{
		ID:        uuid.New(),
		BlockID:   blockID,
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: s.now(),
	}
	if err := s.store.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("insert %s event for %q: %w", action, slug, err)
	}

	if err := s.store.IncrementStat(ctx, blockID, action); err != nil {
		s.logger.Warn("failed to bump analytics counter", "slug", slug, "action", action, "error", err)
	}
	return nil
}

// Stats returns the counters for a block, zeros when the store has no
// row for the slug or no store is configured.
func (s *Service) Stats(ctx context.Context, slug string) (Stats, error) {
	if s.store == nil {
		return Stats{}, nil
	}
	stats, ok, err := s.store.BlockStats(ctx, slug)
	if err != nil {
		return Stats{}, fmt.Errorf("stats for %q: %w", slug, err)
	}
	if !ok {
		return Stats{}, nil
	}
	return stats, nil
}
