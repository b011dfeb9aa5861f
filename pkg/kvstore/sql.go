package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const kvTable = "kv_store"

// SQLBackend stores documents in a single kv_store table. Queries are written
// with `?` placeholders and rebound for the driver, so the same backend serves
// Postgres (lib/pq) and SQLite (modernc).
type SQLBackend struct {
	db *sqlx.DB
}

// NewSQLBackend wraps an open database handle.
func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

// EnsureSchema creates the kv_store table when missing.
func (b *SQLBackend) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS ` + kvTable + ` (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	if _, err := b.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s table: %w", kvTable, err)
	}
	return nil
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	query := b.db.Rebind(`SELECT value FROM ` + kvTable + ` WHERE key = ?`)
	var value string
	if err := b.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(value), nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	query := b.db.Rebind(`INSERT INTO ` + kvTable + ` (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := b.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Remove(ctx context.Context, key string) error {
	query := b.db.Rebind(`DELETE FROM ` + kvTable + ` WHERE key = ?`)
	if _, err := b.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists keys by prefix. LIKE treats `_` as a wildcard, so results are
// re-filtered exactly.
func (b *SQLBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	query := b.db.Rebind(`SELECT key FROM ` + kvTable + ` WHERE key LIKE ? ORDER BY key`)
	var candidates []string
	if err := b.db.SelectContext(ctx, &candidates, query, prefix+"%"); err != nil {
		return nil, fmt.Errorf("list keys %s: %w", prefix, err)
	}
	keys := make([]string, 0, len(candidates))
	for _, k := range candidates {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
