package catalog

import (
	"strings"
)

const CategoryAll = "all"

// Store is the read-only catalog queried by the storefront.
type Store interface {
	ListAll() []Medicine
	Filter(search, category string) []Medicine
	Categories() []Category
	GetByID(id int) (*Medicine, error)
}

type store struct {
	medicines  []Medicine
	categories []Category
}

func NewStore() Store {
	return &store{
		medicines:  seedMedicines(),
		categories: seedCategories(),
	}
}

// ListAll returns the full catalog in definition order.
func (s *store) ListAll() []Medicine {
	out := make([]Medicine, len(s.medicines))
	copy(out, s.medicines)
	return out
}

// Filter returns medicines matching both the category selection and the
// search text. Category "all" matches every category; an empty search
// matches everything. The search is a case-insensitive substring match
// against name and category.
func (s *store) Filter(search, category string) []Medicine {
	q := strings.ToLower(search)

	out := make([]Medicine, 0, len(s.medicines))
	for _, m := range s.medicines {
		matchesCategory := category == CategoryAll || category == "" || m.Category == category
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Category), q)

		if matchesCategory && matchesSearch {
			out = append(out, m)
		}
	}
	return out
}

// Categories returns the known categories with counts computed freshly
// from the live medicine list.
func (s *store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)

	for i := range out {
		n := 0
		for _, m := range s.medicines {
			if m.Category == out[i].Name {
				n++
			}
		}
		out[i].Count = n
	}
	return out
}

func (s *store) GetByID(id int) (*Medicine, error) {
	for _, m := range s.medicines {
		if m.ID == id {
			med := m
			return &med, nil
		}
	}
	return nil, ErrMedicineNotFound
}
