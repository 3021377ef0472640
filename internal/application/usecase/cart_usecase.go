// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "foodcourt/internal/domain/cart"
	fooddom "foodcourt/internal/domain/food"
	"foodcourt/internal/session"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartFoodNotFound    = errors.New("cart_usecase: food not found")
)

// CartView is what cart reads return: the current entries plus whether the
// persisted cart has finished hydrating (an empty not-ready cart is not the
// same thing as a truly empty one).
type CartView struct {
	SessionID string          `json:"sessionId"`
	Ready     bool            `json:"ready"`
	Items     []cartdom.Entry `json:"items"`
}

// CartUsecase coordinates cart operations: it resolves catalog items and
// drives the session's store, which stays the only mutator of cart state.
type CartUsecase struct {
	sessions *session.Manager
	foods    fooddom.Repository
}

func NewCartUsecase(sessions *session.Manager, foods fooddom.Repository) *CartUsecase {
	return &CartUsecase{sessions: sessions, foods: foods}
}

// Get returns the current cart contents.
func (uc *CartUsecase) Get(ctx context.Context, sessionID string) (CartView, error) {
	st, err := uc.store(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{
		SessionID: strings.TrimSpace(sessionID),
		Ready:     st.Ready(),
		Items:     st.Items(),
	}, nil
}

// AddItem resolves foodID against the catalog and appends a snapshot entry.
// Adding the same item repeatedly yields one entry per add.
func (uc *CartUsecase) AddItem(ctx context.Context, sessionID, foodID string) (CartView, error) {
	fid := strings.TrimSpace(foodID)
	if fid == "" {
		return CartView{}, ErrCartInvalidArgument
	}

	st, err := uc.store(sessionID)
	if err != nil {
		return CartView{}, err
	}

	if uc.foods == nil {
		return CartView{}, errors.New("cart_usecase: food repository is not configured")
	}
	f, err := uc.foods.GetByID(ctx, fid)
	if err != nil {
		return CartView{}, err
	}
	if f == nil {
		return CartView{}, ErrCartFoodNotFound
	}

	st.Add(cartdom.Entry{
		ID:        f.ID,
		Name:      f.Name,
		Image:     f.Image,
		Rating:    f.Rating,
		Favorites: f.Favorites,
		Price:     f.Price,
		Details:   f.Details,
	})

	return uc.Get(ctx, sessionID)
}

// RemoveItem drops all entries matching foodID.
// Removing an item not in the cart is a no-op.
func (uc *CartUsecase) RemoveItem(ctx context.Context, sessionID, foodID string) (CartView, error) {
	fid := strings.TrimSpace(foodID)
	if fid == "" {
		return CartView{}, ErrCartInvalidArgument
	}

	st, err := uc.store(sessionID)
	if err != nil {
		return CartView{}, err
	}

	st.Remove(cartdom.Entry{ID: fid})
	return uc.Get(ctx, sessionID)
}

// Clear empties the cart unconditionally.
func (uc *CartUsecase) Clear(ctx context.Context, sessionID string) (CartView, error) {
	st, err := uc.store(sessionID)
	if err != nil {
		return CartView{}, err
	}

	st.Clear()
	return uc.Get(ctx, sessionID)
}

func (uc *CartUsecase) store(sessionID string) (*cartdom.Store, error) {
	if uc == nil || uc.sessions == nil {
		return nil, errors.New("cart_usecase: session manager is not configured")
	}
	st, err := uc.sessions.Store(sessionID)
	if err != nil {
		return nil, ErrCartInvalidArgument
	}
	return st, nil
}
