// Package kvstore persists application state as whole documents under
// logical keys, mirroring device-local key-value storage: a read returns
// the full document and a write replaces it (last write wins).
package kvstore

import (
	"context"
	"database/sql"

	"pharmacart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
	SELECT value
	FROM kv_store
	WHERE key = $1
	`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (r *repository) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Set"),
		zap.String("key", key),
	)

	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		log.Error("failed to write document", zap.Error(err))
		return err
	}

	log.Debug("document written", zap.Int("bytes", len(value)))
	return nil
}

func (r *repository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}
