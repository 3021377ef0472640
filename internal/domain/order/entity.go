// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// ItemSnapshot is stored inside Order.Items: what was bought, at the price
// displayed when it went into the cart. Amount is the parsed decimal string
// (e.g. "239000"), not the locale-formatted display price.
type ItemSnapshot struct {
	FoodID string `json:"foodId" firestore:"foodId"`
	Name   string `json:"name" firestore:"name"`
	Amount string `json:"amount" firestore:"amount"`
}

type Order struct {
	ID        string `json:"id" firestore:"id"`
	UserID    string `json:"userId" firestore:"userId"`
	SessionID string `json:"sessionId" firestore:"sessionId"`

	Items []ItemSnapshot `json:"items" firestore:"items"`

	// Total is the decimal string sum of item amounts.
	Total string `json:"total" firestore:"total"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

var (
	ErrInvalidID        = errors.New("order: invalid id")
	ErrInvalidUserID    = errors.New("order: invalid userId")
	ErrInvalidSessionID = errors.New("order: invalid sessionId")
	ErrInvalidItems     = errors.New("order: invalid items")
	ErrInvalidTotal     = errors.New("order: invalid total")
	ErrInvalidCreatedAt = errors.New("order: invalid createdAt")
)

// Policy
var MinItemsRequired = 1

func New(id, userID, sessionID string, items []ItemSnapshot, total string, createdAt time.Time) (Order, error) {
	o := Order{
		ID:        strings.TrimSpace(id),
		UserID:    strings.TrimSpace(userID),
		SessionID: strings.TrimSpace(sessionID),
		Items:     normalizeItems(items),
		Total:     strings.TrimSpace(total),
		CreatedAt: createdAt.UTC(),
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (o Order) validate() error {
	if o.ID == "" {
		return ErrInvalidID
	}
	if o.UserID == "" {
		return ErrInvalidUserID
	}
	if o.SessionID == "" {
		return ErrInvalidSessionID
	}
	if len(o.Items) < MinItemsRequired {
		return ErrInvalidItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.Name) == "" || strings.TrimSpace(it.Amount) == "" {
			return ErrInvalidItems
		}
	}
	if o.Total == "" {
		return ErrInvalidTotal
	}
	if o.CreatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

func normalizeItems(items []ItemSnapshot) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		out = append(out, ItemSnapshot{
			FoodID: strings.TrimSpace(it.FoodID),
			Name:   strings.TrimSpace(it.Name),
			Amount: strings.TrimSpace(it.Amount),
		})
	}
	return out
}
