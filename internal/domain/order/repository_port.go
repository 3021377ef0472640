// internal/domain/order/repository_port.go
package order

import "context"

// Repository is a persistence port for Order.
//
// Storage recommendation (Firestore):
// - collection: orders
// - docId: Order.ID
type Repository interface {
	// Create persists a new order (fails only on storage error; ids are
	// generated by the caller so no uniqueness probing happens here).
	Create(ctx context.Context, o Order) error

	// ListByUserID returns the user's orders, newest first.
	ListByUserID(ctx context.Context, userID string) ([]Order, error)
}
