package cart

import (
	"sync"

	"pharmacart-be/internal/catalog"
)

// Repository holds cart entries per user. Carts live in memory only: no
// persistence happens here, and the store is created once at app start.
type Repository interface {
	Entries(userID uint) []Entry
	Get(userID uint, medicineID int) (*Entry, bool)
	Create(userID uint, med catalog.Medicine, quantity int)
	SetQuantity(userID uint, medicineID, quantity int) error
	Remove(userID uint, medicineID int)
	Clear(userID uint)
}

type store struct {
	mu    sync.Mutex
	carts map[uint][]Entry
}

func NewStore() Repository {
	return &store{carts: make(map[uint][]Entry)}
}

// Entries returns a snapshot copy of the user's cart in insertion order.
func (s *store) Entries(userID uint) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func (s *store) Get(userID uint, medicineID int) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.carts[userID] {
		if e.Medicine.ID == medicineID {
			entry := e
			return &entry, true
		}
	}
	return nil, false
}

func (s *store) Create(userID uint, med catalog.Medicine, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append(s.carts[userID], Entry{Medicine: med, Quantity: quantity})
}

func (s *store) SetQuantity(userID uint, medicineID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	for i := range entries {
		if entries[i].Medicine.ID == medicineID {
			entries[i].Quantity = quantity
			return nil
		}
	}
	return ErrEntryNotFound
}

func (s *store) Remove(userID uint, medicineID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	for i := range entries {
		if entries[i].Medicine.ID == medicineID {
			s.carts[userID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (s *store) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
