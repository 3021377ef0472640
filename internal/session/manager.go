// internal/session/manager.go
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	cartdom "foodcourt/internal/domain/cart"
)

var ErrInvalidSessionID = errors.New("session: invalid session id")

// DefaultIdleTTL is the inactivity window after which an in-memory cart store
// is evicted. The durable mirror survives eviction; the next touch re-hydrates.
const DefaultIdleTTL = 30 * time.Minute

// StorageFactory binds a durable cart mirror to a session id.
type StorageFactory func(sessionID string) cartdom.Storage

// Manager keeps one cart Store per session id, created lazily and hydrated in
// the background on first touch.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry

	factory StorageFactory
	idleTTL time.Duration
}

type entry struct {
	store    *cartdom.Store
	lastSeen time.Time
}

func NewManager(factory StorageFactory, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Manager{
		entries: map[string]*entry{},
		factory: factory,
		idleTTL: idleTTL,
	}
}

// Store returns the session's cart store, creating and hydrating it on first
// touch. Hydration runs in the background: the store is usable immediately
// and reports Ready() once the persisted cart has loaded.
func (m *Manager) Store(sessionID string) (*cartdom.Store, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrInvalidSessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[sid]; ok {
		e.lastSeen = time.Now()
		return e.store, nil
	}

	var bridge *cartdom.Bridge
	if m.factory != nil {
		if storage := m.factory(sid); storage != nil {
			bridge = cartdom.NewBridge(storage)
		}
	}

	st := cartdom.NewStore(bridge)
	m.entries[sid] = &entry{store: st, lastSeen: time.Now()}

	go st.Hydrate(context.Background())

	return st, nil
}

// Sweep evicts stores idle longer than the TTL and returns how many were
// closed. Eviction flushes each store's bridge.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	var evicted []*cartdom.Store
	for sid, e := range m.entries {
		if now.Sub(e.lastSeen) >= m.idleTTL {
			evicted = append(evicted, e.store)
			delete(m.entries, sid)
		}
	}
	m.mu.Unlock()

	for _, st := range evicted {
		st.Close()
	}
	if n := len(evicted); n > 0 {
		log.Printf("[session] evicted %d idle cart store(s)", n)
	}
	return len(evicted)
}

// Run sweeps periodically until ctx is done, then closes all stores.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.Sweep(now)
		case <-ctx.Done():
			m.Close()
			return ctx.Err()
		}
	}
}

// Close flushes and closes every live store.
func (m *Manager) Close() {
	m.mu.Lock()
	var all []*cartdom.Store
	for sid, e := range m.entries {
		all = append(all, e.store)
		delete(m.entries, sid)
	}
	m.mu.Unlock()

	for _, st := range all {
		st.Close()
	}
}

// Len reports the number of live in-memory stores.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
