// internal/domain/cart/bridge_test.go
package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBridgeRoundTrip(t *testing.T) {
	storage := newMemStorage()

	b := NewBridge(storage)
	want := []Entry{entryFixture("f1"), entryFixture("f2"), entryFixture("f1")}
	b.Enqueue(cloneEntries(want))
	b.Close() // flushes the queued state

	// a fresh bridge over the same storage sees exactly what was enqueued
	b2 := NewBridge(storage)
	defer b2.Close()
	assert.Equal(t, want, b2.Load(context.Background()))
}

func TestBridgeLoadAbsentStartsEmpty(t *testing.T) {
	b := NewBridge(newMemStorage())
	defer b.Close()

	got := b.Load(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBridgeLoadCorruptBlobStartsEmpty(t *testing.T) {
	storage := newMemStorage()
	storage.setBlob([]byte(`{"v":1,"items":[{`))

	b := NewBridge(storage)
	defer b.Close()

	got := b.Load(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBridgeLoadErrorStartsEmpty(t *testing.T) {
	storage := newMemStorage()
	storage.setLoadErr(errors.New("backend down"))

	b := NewBridge(storage)
	defer b.Close()

	got := b.Load(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBridgeLoadLegacyBareArray(t *testing.T) {
	// carts persisted before the versioned envelope were a bare JSON array
	storage := newMemStorage()
	storage.setBlob([]byte(`[{"name":"Spicy Chicken Burger","image":"","rating":"4.5","favorites":"900","price":"159,000 đ","details":""}]`))

	b := NewBridge(storage)
	defer b.Close()

	got := b.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Spicy Chicken Burger", got[0].Name)
	assert.Equal(t, "name:Spicy Chicken Burger", got[0].Key())
}

func TestBridgeSaveFailureKeepsPersistedState(t *testing.T) {
	storage := newMemStorage()

	b := NewBridge(storage)
	good := []Entry{entryFixture("kept")}
	b.Enqueue(cloneEntries(good))
	b.Close()

	storage.setSaveErr(errors.New("quota exceeded"))
	b2 := NewBridge(storage)
	b2.Enqueue([]Entry{entryFixture("lost")})
	b2.Close() // flush attempt fails, error is swallowed

	got, err := decodeEntries(storage.getBlob())
	require.NoError(t, err)
	assert.Equal(t, good, got)
}

func TestBridgeEnqueueCoalescesToLatest(t *testing.T) {
	storage := newMemStorage()
	storage.blockSaves()

	b := NewBridge(storage)
	var last []Entry
	for i := 0; i < 50; i++ {
		last = []Entry{entryFixture("f"), entryFixture("g")}
		b.Enqueue(cloneEntries(last))
	}
	storage.releaseSaves()
	b.Close()

	// intermediate states were dropped, not written one by one
	assert.LessOrEqual(t, storage.saves(), 3)

	got, err := decodeEntries(storage.getBlob())
	require.NoError(t, err)
	assert.Equal(t, last, got)
}

func TestBridgeNilStorageIsInert(t *testing.T) {
	b := NewBridge(nil)
	b.Enqueue([]Entry{entryFixture("x")})

	got := b.Load(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
	b.Close()
}
