// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryFixture(id string) Entry {
	return Entry{
		ID:        id,
		Name:      gofakeit.Dinner(),
		Image:     gofakeit.URL(),
		Rating:    "4.5",
		Favorites: "900",
		Price:     "159,000 đ",
		Details:   gofakeit.Sentence(6),
	}
}

func TestStoreAddPreservesOrderAndDuplicates(t *testing.T) {
	st := NewStore(nil)

	pizza := entryFixture("pizza-a")
	burger := entryFixture("burger-b")

	st.Add(pizza)
	st.Add(pizza)
	st.Add(burger)

	got := st.Items()
	require.Len(t, got, 3)
	assert.Equal(t, "pizza-a", got[0].ID)
	assert.Equal(t, "pizza-a", got[1].ID)
	assert.Equal(t, "burger-b", got[2].ID)
}

func TestStoreRemoveDropsAllMatchesAndIsIdempotent(t *testing.T) {
	st := NewStore(nil)

	pizza := entryFixture("pizza-a")
	burger := entryFixture("burger-b")

	st.Add(pizza)
	st.Add(burger)
	st.Add(pizza)

	st.Remove(pizza)
	got := st.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "burger-b", got[0].ID)

	// removing again is a no-op, not an error
	st.Remove(pizza)
	require.Len(t, st.Items(), 1)
}

func TestStoreRemoveMatchesByIDNotName(t *testing.T) {
	st := NewStore(nil)

	a := entryFixture("food-1")
	b := entryFixture("food-2")
	b.Name = a.Name // same display name, distinct items

	st.Add(a)
	st.Add(b)

	st.Remove(Entry{ID: "food-1"})

	got := st.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "food-2", got[0].ID)
}

func TestStoreRemoveFallsBackToNameForLegacyEntries(t *testing.T) {
	st := NewStore(nil)

	legacy := entryFixture("")
	legacy.Name = "Cheese Vegetable Pizza"
	st.Add(legacy)

	st.Remove(Entry{Name: "Cheese Vegetable Pizza"})
	assert.Empty(t, st.Items())
}

func TestStoreClearIsTotal(t *testing.T) {
	st := NewStore(nil)
	for i := 0; i < 5; i++ {
		st.Add(entryFixture(gofakeit.UUID()))
	}

	st.Clear()
	assert.Empty(t, st.Items())

	// clear on empty stays empty
	st.Clear()
	assert.Empty(t, st.Items())
}

func TestStoreItemsReturnsACopy(t *testing.T) {
	st := NewStore(nil)
	st.Add(entryFixture("pizza-a"))

	got := st.Items()
	got[0].ID = "mutated"

	assert.Equal(t, "pizza-a", st.Items()[0].ID)
}

func TestStoreSubscribersSeeEveryMutation(t *testing.T) {
	st := NewStore(nil)

	var mu sync.Mutex
	var sizes []int
	cancel := st.Subscribe(func(items []Entry) {
		mu.Lock()
		sizes = append(sizes, len(items))
		mu.Unlock()
	})

	st.Add(entryFixture("a"))
	st.Add(entryFixture("b"))
	st.Clear()

	mu.Lock()
	assert.Equal(t, []int{1, 2, 0}, sizes)
	mu.Unlock()

	cancel()
	st.Add(entryFixture("c"))

	mu.Lock()
	assert.Len(t, sizes, 3, "cancelled subscriber must not fire")
	mu.Unlock()
}

func TestStoreReadyLifecycle(t *testing.T) {
	storage := newMemStorage()
	blob, err := encodeEntries([]Entry{entryFixture("persisted")})
	require.NoError(t, err)
	storage.setBlob(blob)

	bridge := NewBridge(storage)
	st := NewStore(bridge)
	defer st.Close()

	assert.False(t, st.Ready(), "store starts uninitialized")
	assert.Empty(t, st.Items(), "uninitialized store reads as empty")

	st.Hydrate(context.Background())

	require.True(t, st.Ready())
	got := st.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].ID)
}

func TestStoreHydrateKeepsMutationsThatRacedAhead(t *testing.T) {
	storage := newMemStorage()
	blob, err := encodeEntries([]Entry{entryFixture("persisted")})
	require.NoError(t, err)
	storage.setBlob(blob)

	bridge := NewBridge(storage)
	st := NewStore(bridge)
	defer st.Close()

	// the UI taps before hydration finishes
	st.Add(entryFixture("eager"))

	st.Hydrate(context.Background())

	got := st.Items()
	require.Len(t, got, 2)
	assert.Equal(t, "persisted", got[0].ID)
	assert.Equal(t, "eager", got[1].ID)
}

func TestStoreClearRacingHydrationStaysEmpty(t *testing.T) {
	storage := newMemStorage()
	blob, err := encodeEntries([]Entry{entryFixture("persisted")})
	require.NoError(t, err)
	storage.setBlob(blob)

	bridge := NewBridge(storage)
	st := NewStore(bridge)

	// the user empties the cart before background hydration completes;
	// the persisted entries must not come back
	st.Clear()
	st.Hydrate(context.Background())

	assert.True(t, st.Ready())
	assert.Empty(t, st.Items())

	st.Close()
	loaded, err := decodeEntries(storage.getBlob())
	require.NoError(t, err)
	assert.Empty(t, loaded, "mirror must hold the cleared state")
}

func TestStoreRemoveRacingHydrationAppliesToPersisted(t *testing.T) {
	storage := newMemStorage()
	blob, err := encodeEntries([]Entry{entryFixture("persisted")})
	require.NoError(t, err)
	storage.setBlob(blob)

	bridge := NewBridge(storage)
	st := NewStore(bridge)
	defer st.Close()

	st.Add(entryFixture("eager"))
	st.Remove(Entry{ID: "persisted"})

	st.Hydrate(context.Background())

	got := st.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "eager", got[0].ID)
}

func TestStorePersistsConcurrentMutationsInApplyOrder(t *testing.T) {
	storage := newMemStorage()
	bridge := NewBridge(storage)
	st := NewStore(bridge)
	st.Hydrate(context.Background())

	// stall one mutator after its snapshot is taken, via its subscriber
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	cancel := st.Subscribe(func(items []Entry) {
		if len(items) == 1 {
			once.Do(func() {
				close(entered)
				<-release
			})
		}
	})
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		st.Add(entryFixture("stale"))
	}()

	<-entered
	st.Clear() // wins in memory, so its snapshot must also win in the mirror
	close(release)
	<-done

	st.Close()

	assert.Empty(t, st.Items())
	loaded, err := decodeEntries(storage.getBlob())
	require.NoError(t, err)
	assert.Empty(t, loaded, "mirror must match the final in-memory state")
}

func TestStoreMutationsNeverBlockOnPersistence(t *testing.T) {
	storage := newMemStorage()
	storage.blockSaves() // storage hangs until released

	bridge := NewBridge(storage)
	st := NewStore(bridge)
	st.Hydrate(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			st.Add(entryFixture(gofakeit.UUID()))
		}
		st.Remove(Entry{ID: "nope"})
		st.Clear()
		st.Add(entryFixture("final"))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mutations blocked on a stalled storage backend")
	}

	storage.releaseSaves()
	st.Close()

	// after the flush, the mirror holds the final in-memory state
	loaded, err := decodeEntries(storage.getBlob())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "final", loaded[0].ID)
}
