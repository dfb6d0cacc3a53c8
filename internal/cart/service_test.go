package cart

import (
	"context"
	"testing"

	"pharmacart-be/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aspirin     = catalog.Medicine{ID: 1, Name: "Aspirin", Category: "Pain Relief", Price: 5.99, InStock: true}
	amoxicillin = catalog.Medicine{ID: 4, Name: "Amoxicillin", Category: "Antibiotics", Price: 12.99, InStock: true}
)

func newTestService() Service {
	return NewService(NewStore())
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates new entry", func(t *testing.T) {
		svc := newTestService()

		entry, err := svc.Add(ctx, 1, aspirin, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, entry.Quantity)

		items := svc.Items(1)
		require.Len(t, items, 1)
		assert.Equal(t, aspirin.ID, items[0].Medicine.ID)
	})

	t.Run("Merges quantity for existing entry", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Add(ctx, 1, aspirin, 2)
		require.NoError(t, err)
		entry, err := svc.Add(ctx, 1, aspirin, 3)
		require.NoError(t, err)

		assert.Equal(t, 5, entry.Quantity)
		// Still a single entry for that medicine.
		assert.Len(t, svc.Items(1), 1)
	})

	t.Run("Rejects quantity below one", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Add(ctx, 1, aspirin, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Empty(t, svc.Items(1))
	})

	t.Run("Carts are per user", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Add(ctx, 1, aspirin, 1)
		require.NoError(t, err)

		assert.Len(t, svc.Items(1), 1)
		assert.Empty(t, svc.Items(2))
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets quantity directly", func(t *testing.T) {
		svc := newTestService()
		_, _ = svc.Add(ctx, 1, aspirin, 2)

		require.NoError(t, svc.UpdateQuantity(ctx, 1, aspirin.ID, 7))
		assert.Equal(t, 7, svc.Items(1)[0].Quantity)
	})

	t.Run("Quantity below one removes the entry", func(t *testing.T) {
		svc := newTestService()
		_, _ = svc.Add(ctx, 1, aspirin, 2)
		_, _ = svc.Add(ctx, 1, amoxicillin, 1)

		require.NoError(t, svc.UpdateQuantity(ctx, 1, aspirin.ID, 0))

		items := svc.Items(1)
		require.Len(t, items, 1)
		assert.Equal(t, amoxicillin.ID, items[0].Medicine.ID)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Unknown entry", func(t *testing.T) {
		svc := newTestService()

		err := svc.UpdateQuantity(ctx, 1, 999, 3)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.Add(ctx, 1, aspirin, 2)

	require.NoError(t, svc.Remove(ctx, 1, aspirin.ID))
	assert.Empty(t, svc.Items(1))

	// Removing an absent entry is a no-op.
	assert.NoError(t, svc.Remove(ctx, 1, aspirin.ID))
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.Add(ctx, 1, aspirin, 2)
	_, _ = svc.Add(ctx, 1, amoxicillin, 1)

	svc.Clear(1)
	assert.Empty(t, svc.Items(1))
	assert.Zero(t, svc.ItemCount(1))
	assert.Zero(t, svc.Total(1))
}

func TestService_TotalAndItemCount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _ = svc.Add(ctx, 1, aspirin, 2)     // 5.99 * 2
	_, _ = svc.Add(ctx, 1, amoxicillin, 1) // 12.99

	assert.InDelta(t, 24.97, svc.Total(1), 1e-9)
	assert.Equal(t, 3, svc.ItemCount(1))

	// Idempotent when nothing changed in between.
	assert.InDelta(t, svc.Total(1), svc.Total(1), 1e-12)
}

// No operation sequence may produce duplicate entries or a quantity < 1.
func TestService_Invariants(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _ = svc.Add(ctx, 1, aspirin, 1)
	_, _ = svc.Add(ctx, 1, aspirin, 4)
	_, _ = svc.Add(ctx, 1, amoxicillin, 2)
	_ = svc.UpdateQuantity(ctx, 1, amoxicillin.ID, 1)
	_ = svc.UpdateQuantity(ctx, 1, aspirin.ID, -3)
	_, _ = svc.Add(ctx, 1, aspirin, 1)
	_ = svc.Remove(ctx, 1, 999)

	seen := map[int]bool{}
	for _, e := range svc.Items(1) {
		assert.False(t, seen[e.Medicine.ID], "duplicate entry for medicine %d", e.Medicine.ID)
		seen[e.Medicine.ID] = true
		assert.GreaterOrEqual(t, e.Quantity, 1)
	}
}

func TestStore_EntriesSnapshot(t *testing.T) {
	repo := NewStore()
	repo.Create(1, aspirin, 2)

	entries := repo.Entries(1)
	entries[0].Quantity = 99

	fresh := repo.Entries(1)
	assert.Equal(t, 2, fresh[0].Quantity)
}
