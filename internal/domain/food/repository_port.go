// internal/domain/food/repository_port.go
package food

import "context"

// Repository is a persistence port for the food catalog.
//
// Storage recommendation (Firestore):
// - collection: foods
// - docId: Food.ID
// - fields: id, name, image, rating, favorites, price, details, createdAt, updatedAt
type Repository interface {
	// GetByID returns the catalog item, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*Food, error)

	// List returns all catalog items ordered by name.
	List(ctx context.Context) ([]*Food, error)

	// Upsert saves the item (create or update, whole-doc overwrite).
	Upsert(ctx context.Context, f *Food) error

	// Delete removes the item. Missing docs are not an error.
	Delete(ctx context.Context, id string) error
}
