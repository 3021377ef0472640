// internal/infra/sqlite/kv_test.go
package sqliteinfra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVGetAbsentReturnsNil(t *testing.T) {
	kv := openTestKV(t)

	blob, err := kv.Get(context.Background(), "sess-1", "@cart")
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestKVPutGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	want := []byte(`{"v":1,"items":[]}`)
	require.NoError(t, kv.Put(ctx, "sess-1", "@cart", want))

	got, err := kv.Get(ctx, "sess-1", "@cart")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKVPutOverwrites(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "sess-1", "@cart", []byte("old")))
	require.NoError(t, kv.Put(ctx, "sess-1", "@cart", []byte("new")))

	got, err := kv.Get(ctx, "sess-1", "@cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestKVIsolatesSessions(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "sess-a", "@cart", []byte("a")))
	require.NoError(t, kv.Put(ctx, "sess-b", "@cart", []byte("b")))

	got, err := kv.Get(ctx, "sess-a", "@cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}

func TestKVDelete(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "sess-1", "@cart", []byte("x")))
	require.NoError(t, kv.Delete(ctx, "sess-1", "@cart"))

	got, err := kv.Get(ctx, "sess-1", "@cart")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is not an error
	require.NoError(t, kv.Delete(ctx, "sess-1", "@cart"))
}
