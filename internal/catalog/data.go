package catalog

// Seed catalog. Iteration order everywhere follows this definition order.
func seedMedicines() []Medicine {
	meds := []Medicine{
		{
			ID:           1,
			Name:         "Aspirin",
			Category:     "Pain Relief",
			Price:        5.99,
			Manufacturer: "Bayer",
			Description:  "Relieves minor aches, pains, and reduces fever. Effective for headaches and mild pain relief.",
			Prescription: false,
			InStock:      true,
		},
		{
			ID:           2,
			Name:         "Ibuprofen",
			Category:     "Anti-inflammatory",
			Price:        7.49,
			Manufacturer: "Advil",
			Description:  "Reduces inflammation and relieves pain. Effective for muscle aches and joint pain.",
			Prescription: false,
			InStock:      true,
		},
		{
			ID:           3,
			Name:         "Paracetamol",
			Category:     "Pain Relief",
			Price:        4.99,
			Manufacturer: "Tylenol",
			Description:  "Effective for headaches and fever reduction. Safe for most age groups.",
			Prescription: false,
			InStock:      false,
		},
		{
			ID:           4,
			Name:         "Amoxicillin",
			Category:     "Antibiotics",
			Price:        12.99,
			Manufacturer: "Generic",
			Description:  "Antibiotic used to treat bacterial infections. Requires prescription.",
			Prescription: true,
			InStock:      true,
		},
		{
			ID:           5,
			Name:         "Vitamin C",
			Category:     "Vitamins",
			Price:        8.99,
			Manufacturer: "Nature Made",
			Description:  "Essential vitamin for immune system support and overall health.",
			Prescription: false,
			InStock:      true,
		},
		{
			ID:           6,
			Name:         "Omeprazole",
			Category:     "Digestive",
			Price:        15.99,
			Manufacturer: "Prilosec",
			Description:  "Reduces stomach acid production. Used for acid reflux and ulcers.",
			Prescription: true,
			InStock:      true,
		},
		{
			ID:           7,
			Name:         "Naproxen",
			Category:     "Anti-inflammatory",
			Price:        9.49,
			Manufacturer: "Aleve",
			Description:  "Long-lasting relief from minor aches and pains. Reduces inflammation.",
			Prescription: false,
			InStock:      true,
		},
		{
			ID:           8,
			Name:         "Penicillin",
			Category:     "Antibiotics",
			Price:        14.99,
			Manufacturer: "Generic",
			Description:  "Broad-spectrum antibiotic for various bacterial infections.",
			Prescription: true,
			InStock:      true,
		},
		{
			ID:           9,
			Name:         "Vitamin D",
			Category:     "Vitamins",
			Price:        12.99,
			Manufacturer: "Nature Made",
			Description:  "Supports bone health and immune system function.",
			Prescription: false,
			InStock:      true,
		},
		{
			ID:           10,
			Name:         "Multivitamin",
			Category:     "Vitamins",
			Price:        16.99,
			Manufacturer: "Centrum",
			Description:  "Complete daily vitamin and mineral supplement.",
			Prescription: false,
			InStock:      true,
		},
	}

	for i := range meds {
		meds[i].Image = ImageURL(meds[i].Name, meds[i].Category)
		meds[i].Images = AlternativeImages(meds[i].Name)
	}

	return meds
}

// Category counts are filled in freshly by the store on every read.
func seedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Pain Relief", Icon: "medkit-outline"},
		{ID: 2, Name: "Anti-inflammatory", Icon: "heart-outline"},
		{ID: 3, Name: "Antibiotics", Icon: "shield-outline"},
		{ID: 4, Name: "Vitamins", Icon: "leaf-outline"},
		{ID: 5, Name: "Digestive", Icon: "nutrition-outline"},
	}
}
