package transport

import (
	"errors"
	"net/http"

	"pharmacart-be/internal/logger"
	"pharmacart-be/internal/middleware"
	"pharmacart-be/internal/order"
	"pharmacart-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler handles checkout and order-history requests
type OrderHandler struct {
	checkoutSvc order.CheckoutService
	archive     order.Archive
	logger      *zap.Logger
}

func NewOrderHandler(checkoutSvc order.CheckoutService, archive order.Archive, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		checkoutSvc: checkoutSvc,
		archive:     archive,
		logger:      logger,
	}
}

// RegisterRoutes registers checkout and order routes; they require a session.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/checkout", h.Checkout)
		r.Get("/api/orders", h.ListOrders)
	})
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())
	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.checkoutSvc.Checkout(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			middleware.RespondWithJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Message: utils.StrPtr("Add some medicines to your cart first"),
			})
		case errors.Is(err, order.ErrCheckoutInProgress):
			middleware.RespondWithJSON(w, http.StatusConflict, Response{
				Success: false,
				Message: utils.StrPtr("Checkout already in progress"),
			})
		default:
			log.Error("checkout failed", zap.Uint("user_id", userID), zap.Error(err))
			middleware.RespondWithJSON(w, http.StatusInternalServerError, Response{
				Success: false,
				Message: utils.StrPtr("Failed to place order. Please try again."),
			})
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, struct {
		Response
		Order *order.Order `json:"order"`
	}{
		Response: Response{Success: true, Message: utils.StrPtr("Order placed successfully")},
		Order:    o,
	})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.archive.Load(r.Context())
	if err != nil {
		h.logger.Error("Failed to load orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}
