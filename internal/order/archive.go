package order

import (
	"context"
	"encoding/json"
	"errors"

	"pharmacart-be/internal/kvstore"
	"pharmacart-be/internal/logger"

	"go.uber.org/zap"
)

const ordersKey = "orders"

// Archive is the durable, append-only log of placed orders, most recent
// first. It is stored as one whole document under a single key; every
// append rewrites the full sequence.
type Archive interface {
	Load(ctx context.Context) ([]Order, error)
	Append(ctx context.Context, o Order) error
}

type archive struct {
	kv kvstore.Repository
}

func NewArchive(kv kvstore.Repository) Archive {
	return &archive{kv: kv}
}

// Load returns the persisted orders in stored order. When nothing has ever
// been persisted, or the stored document does not parse, it falls back to
// the sample sequence instead of propagating a parse error.
func (a *archive) Load(ctx context.Context) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Load"),
	)

	raw, err := a.kv.Get(ctx, ordersKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		log.Debug("no persisted orders, serving samples")
		return sampleOrders(), nil
	}
	if err != nil {
		log.Error("failed to read order archive", zap.Error(err))
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Warn("order archive is malformed, serving samples", zap.Error(err))
		return sampleOrders(), nil
	}

	return orders, nil
}

// Append prepends o to the persisted sequence and writes the whole
// sequence back. A malformed existing document is discarded and the
// sequence starts fresh from o.
func (a *archive) Append(ctx context.Context, o Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Append"),
		zap.Int64("order_id", o.ID),
	)

	var existing []Order

	raw, err := a.kv.Get(ctx, ordersKey)
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound):
		// first order ever
	case err != nil:
		log.Error("failed to read order archive", zap.Error(err))
		return err
	default:
		if err := json.Unmarshal(raw, &existing); err != nil {
			log.Warn("discarding malformed order archive", zap.Error(err))
			existing = nil
		}
	}

	updated := append([]Order{o}, existing...)

	doc, err := json.Marshal(updated)
	if err != nil {
		return err
	}

	if err := a.kv.Set(ctx, ordersKey, doc); err != nil {
		log.Error("failed to write order archive", zap.Error(err))
		return err
	}

	log.Info("order archived", zap.Int("archive_len", len(updated)))
	return nil
}
