package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pharmacart-be/internal/cart"
	"pharmacart-be/internal/logger"
	"pharmacart-be/internal/utils"

	"go.uber.org/zap"
)

// CheckoutService converts a non-empty cart into exactly one archived
// order and then clears the cart. The cart is left intact when archiving
// fails so the user can retry.
type CheckoutService interface {
	Checkout(ctx context.Context, userID uint) (*Order, error)
}

type checkoutService struct {
	cartSvc cart.Service
	archive Archive

	// exchangeRate converts the cart total (source currency) into the
	// billed currency on the order.
	exchangeRate float64

	// delay simulates payment-gateway latency; tests run with zero.
	delay time.Duration

	mu       sync.Mutex
	inFlight map[uint]bool
	lastID   int64
}

func NewCheckoutService(cartSvc cart.Service, archive Archive, exchangeRate float64, delay time.Duration) CheckoutService {
	return &checkoutService{
		cartSvc:      cartSvc,
		archive:      archive,
		exchangeRate: exchangeRate,
		delay:        delay,
		inFlight:     make(map[uint]bool),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, userID uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
		zap.String("email", utils.GetUserEmailFromContext(ctx)),
	)

	items := s.cartSvc.Items(userID)
	if len(items) == 0 {
		log.Warn("checkout refused, cart empty")
		return nil, ErrEmptyCart
	}

	if !s.begin(userID) {
		log.Warn("checkout refused, already in progress")
		return nil, ErrCheckoutInProgress
	}
	defer s.end(userID)

	// Once started, checkout runs to completion even if the caller
	// disconnects; there is no cancellation on the storage calls.
	ctx = context.WithoutCancel(ctx)

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	// Total and Items are derived from the captured snapshot, never from
	// the live cart: entries added or removed while the gateway delay is
	// running belong to the next order, not this one.
	var total float64
	var quantity int
	for _, it := range items {
		total += it.Subtotal()
		quantity += it.Quantity
	}

	o := Order{
		ID:        s.nextID(),
		Date:      time.Now().Format("2006-01-02"),
		Status:    StatusPending,
		Total:     total * s.exchangeRate,
		Items:     quantity,
		Medicines: items,
	}

	log = log.With(zap.Int64("order_id", o.ID))
	log.Info("placing order",
		zap.Float64("total", o.Total),
		zap.Int("items", o.Items),
	)

	if err := s.archive.Append(ctx, o); err != nil {
		// Cart stays intact for retry.
		log.Error("failed to archive order", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrArchiveUnavailable, err)
	}

	s.cartSvc.Clear(userID)

	log.Info("order placed successfully")
	return &o, nil
}

func (s *checkoutService) begin(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *checkoutService) end(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, userID)
}

// nextID derives an identifier from the current time but forces it to be
// strictly increasing, so rapid repeated checkouts within the same
// millisecond cannot collide.
func (s *checkoutService) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
