package cart

import (
	"context"

	"pharmacart-be/internal/catalog"
	"pharmacart-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
//
// Stock checks happen at the transport boundary before Add is called; the
// cart itself does not re-validate in-stock status.
type Service interface {
	Add(ctx context.Context, userID uint, med catalog.Medicine, quantity int) (*Entry, error)
	UpdateQuantity(ctx context.Context, userID uint, medicineID, quantity int) error
	Remove(ctx context.Context, userID uint, medicineID int) error
	Clear(userID uint)
	Items(userID uint) []Entry
	Total(userID uint) float64
	ItemCount(userID uint) int
}

type service struct {
	repo Repository
}

// NewService creates a new cart service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Add puts a medicine into the user's cart. If an entry for the medicine
// already exists its quantity is increased, otherwise a new entry is
// appended.
func (s *service) Add(ctx context.Context, userID uint, med catalog.Medicine, quantity int) (*Entry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.Uint("user_id", userID),
		zap.Int("medicine_id", med.ID),
		zap.Int("quantity", quantity),
	)

	if quantity < 1 {
		log.Warn("invalid quantity")
		return nil, ErrInvalidQuantity
	}

	if existing, ok := s.repo.Get(userID, med.ID); ok {
		finalQty := existing.Quantity + quantity
		if err := s.repo.SetQuantity(userID, med.ID, finalQty); err != nil {
			return nil, err
		}
		log.Debug("quantity merged", zap.Int("final_qty", finalQty))
		return &Entry{Medicine: existing.Medicine, Quantity: finalQty}, nil
	}

	s.repo.Create(userID, med, quantity)
	log.Debug("entry created")
	return &Entry{Medicine: med, Quantity: quantity}, nil
}

// UpdateQuantity sets the quantity of an entry directly. A target below 1
// removes the entry instead; that is a policy choice, not an error.
func (s *service) UpdateQuantity(ctx context.Context, userID uint, medicineID, quantity int) error {
	if quantity < 1 {
		s.repo.Remove(userID, medicineID)
		return nil
	}
	return s.repo.SetQuantity(userID, medicineID, quantity)
}

// Remove deletes an entry. Removing an absent entry is a no-op.
func (s *service) Remove(ctx context.Context, userID uint, medicineID int) error {
	s.repo.Remove(userID, medicineID)
	return nil
}

func (s *service) Clear(userID uint) {
	s.repo.Clear(userID)
}

func (s *service) Items(userID uint) []Entry {
	return s.repo.Entries(userID)
}

// Total sums price * quantity over all entries, in the catalog's source
// currency.
func (s *service) Total(userID uint) float64 {
	total := 0.0
	for _, e := range s.repo.Entries(userID) {
		total += e.Subtotal()
	}
	return total
}

// ItemCount sums quantities over all entries (not the entry count); the
// UI shows it as the cart badge.
func (s *service) ItemCount(userID uint) int {
	count := 0
	for _, e := range s.repo.Entries(userID) {
		count += e.Quantity
	}
	return count
}
