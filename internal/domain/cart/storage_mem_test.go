// internal/domain/cart/storage_mem_test.go
package cart

import (
	"context"
	"sync"
)

// memStorage is an in-memory cart.Storage with switches for the failure and
// stall scenarios the bridge has to absorb.
type memStorage struct {
	mu      sync.Mutex
	blob    []byte // nil means absent (first run)
	loadErr error
	saveErr error

	gate      chan struct{} // non-nil: Save blocks until the gate closes
	saveCount int
}

func newMemStorage() *memStorage {
	return &memStorage{}
}

func (m *memStorage) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out, nil
}

func (m *memStorage) Save(ctx context.Context, blob []byte) error {
	m.mu.Lock()
	gate := m.gate
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCount++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blob = make([]byte, len(blob))
	copy(m.blob, blob)
	return nil
}

func (m *memStorage) setBlob(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
}

func (m *memStorage) getBlob() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out
}

func (m *memStorage) setLoadErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *memStorage) setSaveErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *memStorage) saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCount
}

func (m *memStorage) blockSaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate = make(chan struct{})
}

func (m *memStorage) releaseSaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gate != nil {
		close(m.gate)
		m.gate = nil
	}
}
