package transport

import (
	"errors"
	"net/http"
	"strconv"

	"pharmacart-be/internal/catalog"
	"pharmacart-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MedicineDetail is the detail-view payload with the alternative image
// set and a fallback for failed image loads.
type MedicineDetail struct {
	catalog.Medicine
	FallbackImage string `json:"fallbackImage"`
}

// CatalogHandler handles HTTP requests for the medicine catalog
type CatalogHandler struct {
	store  catalog.Store
	logger *zap.Logger
}

func NewCatalogHandler(store catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/medicines", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Detail)
	})
	r.Get("/api/categories", h.Categories)
}

// List returns the catalog filtered by search text and category. Without
// query parameters it is the full static list.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}

	medicines := h.store.Filter(search, category)
	middleware.RespondWithJSON(w, http.StatusOK, medicines)
}

func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	med, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrMedicineNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "medicine not found")
			return
		}
		h.logger.Error("Failed to load medicine", zap.Int("id", id), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load medicine")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, MedicineDetail{
		Medicine:      *med,
		FallbackImage: catalog.FallbackImageURL(med.Name),
	})
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Categories())
}
