// internal/adapters/out/firestore/cart_storage_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "foodcourt/internal/domain/cart"
)

// cartTTL is the inactivity window after which a persisted cart becomes
// eligible for auto deletion (Firestore TTL should be configured on expiresAt).
const cartTTL = 7 * 24 * time.Hour

// CartStorageFS implements cart.Storage using Firestore, the deployment
// alternative to the local sqlite mirror.
//
// Collection design:
// - collection: carts
// - docId: sessionId (the source of truth)
// - fields: blob (serialized cart, opaque to this adapter), updatedAt, expiresAt
//
// The blob stays opaque here so the cart package owns its own format; this
// adapter only moves bytes under the session's doc.
type CartStorageFS struct {
	Client    *firestore.Client
	SessionID string
}

func NewCartStorageFS(client *firestore.Client, sessionID string) *CartStorageFS {
	return &CartStorageFS{Client: client, SessionID: strings.TrimSpace(sessionID)}
}

var _ cartdom.Storage = (*CartStorageFS)(nil)

func (s *CartStorageFS) doc() *firestore.DocumentRef {
	return s.Client.Collection("carts").Doc(s.SessionID)
}

// Load returns (nil, nil) if the doc is absent (first run).
func (s *CartStorageFS) Load(ctx context.Context) ([]byte, error) {
	if s == nil || s.Client == nil {
		return nil, errors.New("cart_storage_fs: firestore client is nil")
	}
	if s.SessionID == "" {
		return nil, errors.New("cart_storage_fs: sessionID is empty")
	}

	snap, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc cartBlobDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return []byte(doc.Blob), nil
}

// Save overwrites the full doc and refreshes the TTL window.
func (s *CartStorageFS) Save(ctx context.Context, blob []byte) error {
	if s == nil || s.Client == nil {
		return errors.New("cart_storage_fs: firestore client is nil")
	}
	if s.SessionID == "" {
		return errors.New("cart_storage_fs: sessionID is empty")
	}

	now := time.Now().UTC()
	_, err := s.doc().Set(ctx, cartBlobDoc{
		Blob:      string(blob),
		UpdatedAt: now,
		ExpiresAt: now.Add(cartTTL),
	})
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartBlobDoc struct {
	Blob      string    `firestore:"blob"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}
