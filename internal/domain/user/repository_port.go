// internal/domain/user/repository_port.go
package user

import "context"

// Repository is a persistence port for User.
//
// Storage recommendation (Firestore):
// - collection: users
// - docId: uid
type Repository interface {
	// GetByUID returns the user doc, or (nil, nil) when absent.
	GetByUID(ctx context.Context, uid string) (*User, error)

	// List returns all users ordered by email (admin panel).
	List(ctx context.Context) ([]*User, error)

	// Upsert saves the user doc (create or update).
	Upsert(ctx context.Context, u *User) error
}
