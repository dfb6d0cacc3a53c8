package catalog

// Medicine is an immutable catalog record. The catalog is seeded once at
// process start and never mutated.
type Medicine struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Manufacturer string   `json:"manufacturer"`
	Description  string   `json:"description"`
	Prescription bool     `json:"prescription"`
	InStock      bool     `json:"inStock"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
