package transport

import (
	"errors"
	"net/http"
	"strconv"

	"pharmacart-be/internal/cart"
	"pharmacart-be/internal/catalog"
	"pharmacart-be/internal/logger"
	"pharmacart-be/internal/middleware"
	"pharmacart-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents the add-to-cart request payload
type AddToCartRequest struct {
	MedicineID int `json:"medicine_id" validate:"required,gte=1"`
	Quantity   int `json:"quantity" validate:"gte=1"`
}

// UpdateCartRequest represents the quantity-change request payload
type UpdateCartRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart view: entries plus derived badge count and
// totals in both the source and the billed currency.
type CartResponse struct {
	Items          []cart.Entry `json:"items"`
	ItemCount      int          `json:"itemCount"`
	Total          float64      `json:"total"`
	TotalConverted float64      `json:"totalConverted"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartSvc      cart.Service
	catalogStore catalog.Store
	exchangeRate float64
	logger       *zap.Logger
}

func NewCartHandler(cartSvc cart.Service, catalogStore catalog.Store, exchangeRate float64, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartSvc:      cartSvc,
		catalogStore: catalogStore,
		exchangeRate: exchangeRate,
		logger:       logger,
	}
}

// RegisterRoutes registers all cart routes; they all require a session.
func (h *CartHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.Get)
		r.Post("/", h.Add)
		r.Put("/{medicineID}", h.UpdateQuantity)
		r.Delete("/{medicineID}", h.Remove)
		r.Delete("/", h.Clear)
	})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	total := h.cartSvc.Total(userID)
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items:          h.cartSvc.Items(userID),
		ItemCount:      h.cartSvc.ItemCount(userID),
		Total:          total,
		TotalConverted: total * h.exchangeRate,
	})
}

// Add puts a medicine in the cart. The in-stock check lives here, at the
// boundary; the cart service trusts its callers.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	med, err := h.catalogStore.GetByID(req.MedicineID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "medicine not found")
		return
	}

	if !med.InStock {
		middleware.RespondWithJSON(w, http.StatusConflict, Response{
			Success: false,
			Message: utils.StrPtr("This medicine is currently out of stock"),
		})
		return
	}

	entry, err := h.cartSvc.Add(r.Context(), userID, *med, req.Quantity)
	if err != nil {
		log.Warn("failed to add to cart", zap.Error(err))
		middleware.RespondWithJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: utils.StrPtr(err.Error()),
		})
		return
	}

	log.Info("added to cart",
		zap.Uint("user_id", userID),
		zap.Int("medicine_id", med.ID),
		zap.Int("final_qty", entry.Quantity),
	)

	middleware.RespondWithJSON(w, http.StatusOK, struct {
		Response
		Entry *cart.Entry `json:"entry"`
	}{
		Response: Response{Success: true, Message: utils.StrPtr("Added to cart")},
		Entry:    entry,
	})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	medicineID, err := strconv.Atoi(chi.URLParam(r, "medicineID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	var req UpdateCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartSvc.UpdateQuantity(r.Context(), userID, medicineID, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrEntryNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "cart entry not found")
			return
		}
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Response{
		Success: true,
		Message: utils.StrPtr("Cart updated"),
	})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	medicineID, err := strconv.Atoi(chi.URLParam(r, "medicineID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	_ = h.cartSvc.Remove(r.Context(), userID, medicineID)

	middleware.RespondWithJSON(w, http.StatusOK, Response{
		Success: true,
		Message: utils.StrPtr("Removed from cart"),
	})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	h.cartSvc.Clear(userID)

	middleware.RespondWithJSON(w, http.StatusOK, Response{
		Success: true,
		Message: utils.StrPtr("Cart cleared"),
	})
}
