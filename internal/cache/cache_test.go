package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0)
}

func TestClientSetGetDelete(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	got, err := client.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, client.Set(ctx, "records:best", []byte(`[{"score":420}]`), time.Minute))

	got, err = client.Get(ctx, "records:best")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"score":420}]`), got)

	require.NoError(t, client.Delete(ctx, "records:best"))

	got, err = client.Get(ctx, "records:best")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientDeleteMany(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.Set(ctx, "records:best", []byte("a"), time.Minute))
	require.NoError(t, client.Set(ctx, "records:latest", []byte("b"), time.Minute))

	require.NoError(t, client.Delete(ctx, "records:best", "records:latest"))

	for _, key := range []string{"records:best", "records:latest"} {
		got, err := client.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	ctx := context.Background()
	var client *Client

	got, err := client.Get(ctx, "anything")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, client.Set(ctx, "anything", []byte("x"), time.Minute))
	assert.NoError(t, client.Delete(ctx, "anything"))
}

func TestClientSwallowsDeadRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := New(mr.Addr(), "", 0)
	mr.Close()

	got, err := client.Get(ctx, "anything")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, client.Set(ctx, "anything", []byte("x"), time.Minute))
	assert.NoError(t, client.Delete(ctx, "anything"))
}
