// internal/domain/cart/bridge.go
package cart

import (
	"context"
	"log"
)

// Bridge keeps a durable mirror of the cart in Storage without ever gating
// in-memory correctness on durability.
//
// Write discipline: at most one Save is in flight; at most one state is
// queued behind it, always the LATEST one (stale queued states are dropped).
// So the final persisted value matches the final in-memory value even under
// rapid consecutive mutations, while mutations never wait on Storage.
//
// Failures are logged and swallowed: no retry, no surfacing to callers.
type Bridge struct {
	storage Storage

	pending chan []Entry // cap 1, latest-wins
	quit    chan struct{}
	stopped chan struct{}
}

func NewBridge(storage Storage) *Bridge {
	b := &Bridge{
		storage: storage,
		pending: make(chan []Entry, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	if storage != nil {
		go b.run()
	}
	return b
}

// Load reads the persisted cart. Absent key (first run) and corrupt blobs
// both degrade to the empty cart; only the latter is worth a log line.
func (b *Bridge) Load(ctx context.Context) []Entry {
	if b == nil || b.storage == nil {
		return []Entry{}
	}

	blob, err := b.storage.Load(ctx)
	if err != nil {
		log.Printf("[cart_bridge] WARN: load failed, starting empty: %v", err)
		return []Entry{}
	}
	if blob == nil {
		// first run
		return []Entry{}
	}

	items, err := decodeEntries(blob)
	if err != nil {
		log.Printf("[cart_bridge] WARN: corrupt blob (%d bytes), starting empty: %v", len(blob), err)
		return []Entry{}
	}
	return items
}

// Enqueue schedules items for persistence and returns immediately.
// items must be a snapshot owned by the Bridge from here on.
func (b *Bridge) Enqueue(items []Entry) {
	if b == nil || b.storage == nil {
		return
	}
	for {
		select {
		case b.pending <- items:
			return
		default:
		}
		// queue full: drop the stale state and retry with the newer one
		select {
		case <-b.pending:
		default:
		}
	}
}

// Close stops the writer after a best-effort flush of the queued state.
// The Store must not Enqueue after Close.
func (b *Bridge) Close() {
	if b == nil || b.storage == nil {
		return
	}
	close(b.quit)
	<-b.stopped
}

func (b *Bridge) run() {
	for {
		select {
		case items := <-b.pending:
			b.save(items)
		case <-b.quit:
			// final flush
			select {
			case items := <-b.pending:
				b.save(items)
			default:
			}
			close(b.stopped)
			return
		}
	}
}

func (b *Bridge) save(items []Entry) {
	blob, err := encodeEntries(items)
	if err != nil {
		log.Printf("[cart_bridge] WARN: encode failed (state kept in memory): %v", err)
		return
	}
	if err := b.storage.Save(context.Background(), blob); err != nil {
		log.Printf("[cart_bridge] WARN: save failed (state kept in memory): %v", err)
	}
}
