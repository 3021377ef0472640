// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartdom "foodcourt/internal/domain/cart"
	fooddom "foodcourt/internal/domain/food"
	orderdom "foodcourt/internal/domain/order"
	"foodcourt/internal/session"
)

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")
	ErrCheckoutEmptyCart       = errors.New("checkout_usecase: cart is empty")
	ErrCheckoutBadPrice        = errors.New("checkout_usecase: unparsable price in cart")
)

// CheckoutUsecase turns the session's cart into a persisted order.
// The cart is cleared only after the order write succeeds; on any failure the
// cart stays as it was.
type CheckoutUsecase struct {
	sessions *session.Manager
	orders   orderdom.Repository
	clock    Clock
}

func NewCheckoutUsecase(sessions *session.Manager, orders orderdom.Repository) *CheckoutUsecase {
	return &CheckoutUsecase{sessions: sessions, orders: orders, clock: systemClock{}}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(sessions *session.Manager, orders orderdom.Repository, clock Clock) *CheckoutUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CheckoutUsecase{sessions: sessions, orders: orders, clock: clock}
}

// Submit builds an order from the current cart snapshot and persists it.
func (uc *CheckoutUsecase) Submit(ctx context.Context, userID, sessionID string) (orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	sid := strings.TrimSpace(sessionID)
	if uid == "" || sid == "" {
		return orderdom.Order{}, ErrCheckoutInvalidArgument
	}
	if uc.sessions == nil || uc.orders == nil {
		return orderdom.Order{}, errors.New("checkout_usecase: not configured")
	}

	st, err := uc.sessions.Store(sid)
	if err != nil {
		return orderdom.Order{}, ErrCheckoutInvalidArgument
	}

	items := st.Items()
	if len(items) == 0 {
		return orderdom.Order{}, ErrCheckoutEmptyCart
	}

	snapshots, total, err := buildOrderItems(items)
	if err != nil {
		return orderdom.Order{}, err
	}

	o, err := orderdom.New(uuid.NewString(), uid, sid, snapshots, total.String(), uc.clock.Now())
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("checkout_usecase: %w", err)
	}

	if err := uc.orders.Create(ctx, o); err != nil {
		return orderdom.Order{}, err
	}

	// order is durable; consume the cart
	st.Clear()

	log.Printf("[checkout_uc] OK: order created orderId=%s userId=%s items=%d total=%s",
		o.ID, uid, len(o.Items), o.Total,
	)
	return o, nil
}

// History lists the user's past orders, newest first.
func (uc *CheckoutUsecase) History(ctx context.Context, userID string) ([]orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCheckoutInvalidArgument
	}
	return uc.orders.ListByUserID(ctx, uid)
}

func buildOrderItems(items []cartdom.Entry) ([]orderdom.ItemSnapshot, decimal.Decimal, error) {
	snapshots := make([]orderdom.ItemSnapshot, 0, len(items))
	total := decimal.Zero

	for _, e := range items {
		amount, err := fooddom.ParsePrice(e.Price)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("%w: %q (%s)", ErrCheckoutBadPrice, e.Price, e.Name)
		}
		total = total.Add(amount)
		snapshots = append(snapshots, orderdom.ItemSnapshot{
			FoodID: e.ID,
			Name:   e.Name,
			Amount: amount.String(),
		})
	}
	return snapshots, total, nil
}
