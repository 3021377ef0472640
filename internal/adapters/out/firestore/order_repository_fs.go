// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "foodcourt/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: Order.ID (uuid, generated by the usecase)
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(o.ID)
	if oid == "" {
		return errors.New("order_repository_fs: Create requires order.ID as docId")
	}

	_, err := r.col().Doc(oid).Create(ctx, orderDocFromDomain(o))
	return err
}

func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}

	iter := r.col().
		Where("userId", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []orderdom.Order{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		o := doc.toDomain()
		o.ID = snap.Ref.ID
		out = append(out, o)
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	ID        string         `firestore:"id"`
	UserID    string         `firestore:"userId"`
	SessionID string         `firestore:"sessionId"`
	Items     []orderItemDoc `firestore:"items"`
	Total     string         `firestore:"total"`
	CreatedAt time.Time      `firestore:"createdAt"`
}

type orderItemDoc struct {
	FoodID string `firestore:"foodId"`
	Name   string `firestore:"name"`
	Amount string `firestore:"amount"`
}

func orderDocFromDomain(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			FoodID: it.FoodID,
			Name:   it.Name,
			Amount: it.Amount,
		})
	}
	return orderDoc{
		ID:        o.ID,
		UserID:    o.UserID,
		SessionID: o.SessionID,
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func (d orderDoc) toDomain() orderdom.Order {
	items := make([]orderdom.ItemSnapshot, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, orderdom.ItemSnapshot{
			FoodID: it.FoodID,
			Name:   it.Name,
			Amount: it.Amount,
		})
	}
	return orderdom.Order{
		ID:        d.ID,
		UserID:    d.UserID,
		SessionID: d.SessionID,
		Items:     items,
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
	}
}
