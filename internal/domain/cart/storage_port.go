// internal/domain/cart/storage_port.go
package cart

import "context"

// StorageKey is the fixed key the cart blob lives under.
// Kept as "@cart" for compatibility with previously persisted carts.
const StorageKey = "@cart"

// Storage is the durable key-value port the Bridge writes through.
// One blob per session under StorageKey; the Bridge owns the key exclusively.
//
// Not-found policy:
// - Load returns (nil, nil) when the key is absent (first run)
type Storage interface {
	// Load reads the serialized cart blob.
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the blob (whole-state, not a delta).
	Save(ctx context.Context, blob []byte) error
}
