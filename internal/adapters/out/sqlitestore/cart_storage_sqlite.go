// internal/adapters/out/sqlitestore/cart_storage_sqlite.go
package sqlitestore

import (
	"context"
	"errors"
	"strings"

	cartdom "foodcourt/internal/domain/cart"
	sqliteinfra "foodcourt/internal/infra/sqlite"
)

// CartStorage implements cart.Storage over the local sqlite blob store:
// one row per session under the fixed cart.StorageKey.
type CartStorage struct {
	KV        *sqliteinfra.KV
	SessionID string
}

func NewCartStorage(kv *sqliteinfra.KV, sessionID string) *CartStorage {
	return &CartStorage{KV: kv, SessionID: strings.TrimSpace(sessionID)}
}

var _ cartdom.Storage = (*CartStorage)(nil)

func (s *CartStorage) Load(ctx context.Context) ([]byte, error) {
	if s == nil || s.KV == nil {
		return nil, errors.New("cart_storage_sqlite: kv is nil")
	}
	if s.SessionID == "" {
		return nil, errors.New("cart_storage_sqlite: sessionID is empty")
	}
	return s.KV.Get(ctx, s.SessionID, cartdom.StorageKey)
}

func (s *CartStorage) Save(ctx context.Context, blob []byte) error {
	if s == nil || s.KV == nil {
		return errors.New("cart_storage_sqlite: kv is nil")
	}
	if s.SessionID == "" {
		return errors.New("cart_storage_sqlite: sessionID is empty")
	}
	return s.KV.Put(ctx, s.SessionID, cartdom.StorageKey, blob)
}
