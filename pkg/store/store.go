// Package store persists block rows and analytics events in PostgreSQL.
// Connection management and schema migrations follow goose over a pgx
// stdlib pool; migrations are embedded so the binary is self-contained.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/laufblocks/laufblocks/pkg/analytics"
	"github.com/laufblocks/laufblocks/pkg/registry"
)

//go:embed migrations
var embedMigrations embed.FS

// Connect opens a PostgreSQL pool using the provided DSN and verifies
// it with a ping.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}
	return db, nil
}

// Migrate runs all pending goose migrations from the embedded SQL files.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Store implements analytics.Store over PostgreSQL.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a Store over an open connection pool.
func New(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// SyncBlocks inserts a row for every registered block that does not have
// one yet. Existing rows keep their counters.
func (s *Store) SyncBlocks(ctx context.Context, blocks []registry.BlockMeta) error {
	for _, block := range blocks {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO blocks (slug)
			VALUES ($1)
			ON CONFLICT (slug) DO NOTHING
		`, block.Slug)
		if err != nil {
			return fmt.Errorf("sync block %q: %w", block.Slug, err)
		}
	}
	s.logger.Info("block rows synced", "count", len(blocks))
	return nil
}

// BlockIDBySlug resolves a slug to its stored id.
func (s *Store) BlockIDBySlug(ctx context.Context, slug string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `SELECT id FROM blocks WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("select block id: %w", err)
	}
	return id, true, nil
}

// InsertEvent stores one analytics event.
func (s *Store) InsertEvent(ctx context.Context, event analytics.Event) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("marshal event metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO block_analytics (id, block_id, user_id, action, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.ID, event.BlockID, event.UserID, string(event.Action), metadata, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// IncrementStat bumps the denormalized counter for one action.
func (s *Store) IncrementStat(ctx context.Context, blockID uuid.UUID, action analytics.Action) error {
	var column string
	switch {
	case action == analytics.ActionView:
		column = "view_count"
	case action.IsCopy():
		column = "copy_count"
	default:
		return fmt.Errorf("invalid analytics action %q", action)
	}

	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE blocks SET %s = %s + 1 WHERE id = $1`, column, column),
		blockID)
	if err != nil {
		return fmt.Errorf("increment %s: %w", column, err)
	}
	return nil
}

// BlockStats returns the counters for a slug.
func (s *Store) BlockStats(ctx context.Context, slug string) (analytics.Stats, bool, error) {
	var stats analytics.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT view_count, copy_count FROM blocks WHERE slug = $1`, slug).
		Scan(&stats.Views, &stats.Copies)
	if errors.Is(err, sql.ErrNoRows) {
		return analytics.Stats{}, false, nil
	}
	if err != nil {
		return analytics.Stats{}, false, fmt.Errorf("select block stats: %w", err)
	}
	return stats, true, nil
}
