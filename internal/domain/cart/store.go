// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"
)

// Store is the single source of truth for what the session intends to buy,
// and the only component allowed to mutate the entry sequence.
//
// Mutations are applied in call order, succeed unconditionally in memory and
// never wait for persistence; the Bridge mirrors state in the background.
// Consumers that need re-render on change register via Subscribe.
type Store struct {
	mu     sync.Mutex
	items  []Entry
	ready  bool
	closed bool

	// mutations applied before hydration, replayed onto the loaded entries
	pending []pendingOp

	subs    map[int]func([]Entry)
	nextSub int

	bridge *Bridge
}

type opKind int

const (
	opAdd opKind = iota
	opRemove
	opClear
)

type pendingOp struct {
	kind  opKind
	entry Entry
}

// NewStore creates an empty, not-yet-hydrated store.
// bridge may be nil (memory-only cart, e.g. tests).
func NewStore(bridge *Bridge) *Store {
	return &Store{
		items:  []Entry{},
		subs:   map[int]func([]Entry){},
		bridge: bridge,
	}
}

// Hydrate loads previously persisted entries and marks the store ready.
// Until it runs, reads observe an empty cart with Ready() == false.
// Load failure also flips ready: the empty cart is then the session's state.
func (s *Store) Hydrate(ctx context.Context) {
	var loaded []Entry
	if s.bridge != nil {
		loaded = s.bridge.Load(ctx)
	} else {
		loaded = []Entry{}
	}

	s.mu.Lock()
	if s.ready || s.closed {
		s.mu.Unlock()
		return
	}
	// mutations that raced ahead of hydration replay onto the persisted
	// entries in call order, so a pre-hydration Clear or Remove also applies
	// to what was loaded instead of being overturned by it
	merged := cloneEntries(loaded)
	for _, op := range s.pending {
		merged = applyOp(merged, op)
	}
	s.items = merged
	s.pending = nil
	s.ready = true
	snap := cloneEntries(s.items)
	subs := s.snapshotSubs()
	s.persist(snap)
	s.mu.Unlock()

	s.notify(subs, snap)
}

func applyOp(items []Entry, op pendingOp) []Entry {
	switch op.kind {
	case opAdd:
		return append(items, op.entry)
	case opRemove:
		key := op.entry.Key()
		kept := items[:0]
		for _, it := range items {
			if it.Key() != key {
				kept = append(kept, it)
			}
		}
		return kept
	case opClear:
		return items[:0]
	}
	return items
}

// Ready reports whether hydration has completed (successfully or not).
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Add appends a new entry at the end. Duplicates are kept.
func (s *Store) Add(e Entry) {
	s.mutate(pendingOp{kind: opAdd, entry: e})
}

// Remove drops ALL entries whose key matches e's key.
// Removing an absent item is a no-op, not an error.
func (s *Store) Remove(e Entry) {
	s.mutate(pendingOp{kind: opRemove, entry: e})
}

// Clear resets the cart to the empty sequence unconditionally.
func (s *Store) Clear() {
	s.mutate(pendingOp{kind: opClear})
}

// mutate applies op, records it for hydration replay while not yet ready,
// and enqueues the snapshot before releasing the lock so concurrent mutators
// persist in the same order the mutex applied them.
func (s *Store) mutate(op pendingOp) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.items = applyOp(s.items, op)
	if !s.ready {
		// replayed and persisted by Hydrate; saving now could overwrite the
		// mirror before the persisted entries are merged in
		s.pending = append(s.pending, op)
	}
	snap := cloneEntries(s.items)
	subs := s.snapshotSubs()
	if s.ready {
		s.persist(snap)
	}
	s.mu.Unlock()

	s.notify(subs, snap)
}

// Items returns a copy of the current entry sequence, in insertion order.
func (s *Store) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.items)
}

// Subscribe registers fn to be called with a snapshot after every mutation.
// The returned cancel func unregisters it.
func (s *Store) Subscribe(fn func([]Entry)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close stops the store and flushes the bridge. Further mutations are no-ops.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.bridge != nil {
		s.bridge.Close()
	}
}

func (s *Store) snapshotSubs() []func([]Entry) {
	out := make([]func([]Entry), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the lock so subscribers may read the store re-entrantly.
func (s *Store) notify(subs []func([]Entry), snap []Entry) {
	for _, fn := range subs {
		fn(cloneEntries(snap))
	}
}

func (s *Store) persist(snap []Entry) {
	if s.bridge != nil {
		s.bridge.Enqueue(snap)
	}
}
