package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListAll(t *testing.T) {
	s := NewStore()

	all := s.ListAll()
	require.Len(t, all, 10)

	// Fixed iteration order: definition order of the seed.
	assert.Equal(t, "Aspirin", all[0].Name)
	assert.Equal(t, "Multivitamin", all[9].Name)

	t.Run("Returned slice is a copy", func(t *testing.T) {
		all[0].Name = "mutated"
		assert.Equal(t, "Aspirin", s.ListAll()[0].Name)
	})
}

func TestStore_Filter(t *testing.T) {
	s := NewStore()

	t.Run("Empty search and all category matches everything", func(t *testing.T) {
		assert.Len(t, s.Filter("", CategoryAll), 10)
	})

	t.Run("By category", func(t *testing.T) {
		got := s.Filter("", "Vitamins")
		require.Len(t, got, 3)
		for _, m := range got {
			assert.Equal(t, "Vitamins", m.Category)
		}
	})

	t.Run("Search is case-insensitive on name", func(t *testing.T) {
		got := s.Filter("aSpIrIn", CategoryAll)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("Search matches category text", func(t *testing.T) {
		got := s.Filter("antibio", CategoryAll)
		require.Len(t, got, 2)
		assert.Equal(t, "Amoxicillin", got[0].Name)
		assert.Equal(t, "Penicillin", got[1].Name)
	})

	t.Run("Search and category combine", func(t *testing.T) {
		got := s.Filter("vitamin", "Vitamins")
		assert.Len(t, got, 3)

		got = s.Filter("aspirin", "Vitamins")
		assert.Empty(t, got)
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, s.Filter("does-not-exist", CategoryAll))
	})
}

func TestStore_Categories(t *testing.T) {
	s := NewStore()

	cats := s.Categories()
	require.Len(t, cats, 5)

	counts := map[string]int{}
	for _, c := range cats {
		counts[c.Name] = c.Count
	}

	assert.Equal(t, 2, counts["Pain Relief"])
	assert.Equal(t, 2, counts["Anti-inflammatory"])
	assert.Equal(t, 2, counts["Antibiotics"])
	assert.Equal(t, 3, counts["Vitamins"])
	assert.Equal(t, 1, counts["Digestive"])
}

func TestStore_GetByID(t *testing.T) {
	s := NewStore()

	t.Run("Found", func(t *testing.T) {
		m, err := s.GetByID(4)
		require.NoError(t, err)
		assert.Equal(t, "Amoxicillin", m.Name)
		assert.True(t, m.Prescription)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := s.GetByID(999)
		assert.ErrorIs(t, err, ErrMedicineNotFound)
	})
}

func TestImageURL(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, ImageURL("Aspirin", "Pain Relief"), ImageURL("Aspirin", "Pain Relief"))
	})

	t.Run("Name rules take precedence", func(t *testing.T) {
		assert.Equal(t, medicineImages["pills"], ImageURL("Ibuprofen", "Anti-inflammatory"))
		assert.Equal(t, medicineImages["vitamins"], ImageURL("Vitamin D", "Vitamins"))
		assert.Equal(t, medicineImages["tablets"], ImageURL("Paracetamol", "Pain Relief"))
	})

	t.Run("Category fallback", func(t *testing.T) {
		assert.Equal(t, medicineImages["digestive"], ImageURL("Something", "Digestive"))
		assert.Equal(t, medicineImages["tablets"], ImageURL("Naproxen", "Anti-inflammatory"))
	})

	t.Run("Generic fallback", func(t *testing.T) {
		assert.Equal(t, medicineImages["generic"], ImageURL("Unknown", "Unknown"))
	})
}

func TestAlternativeImages(t *testing.T) {
	for _, name := range []string{"Aspirin", "Ibuprofen", "Paracetamol", "Amoxicillin", "Vitamin C", "Omeprazole", "Unknown"} {
		assert.Len(t, AlternativeImages(name), 3, name)
	}
}

func TestFallbackImageURL(t *testing.T) {
	got := FallbackImageURL("Vitamin C")
	assert.Contains(t, got, "Vitamin+C")
}
