package session_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinovaai/skinova/pkg/session"
)

func TestRedisStore(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := session.NewRedisStore(client, "skinova:credential")
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoCredential)

	require.NoError(t, store.Save(ctx, "tok-redis"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-redis", got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoCredential)

	// Clearing an already-empty slot is not an error.
	require.NoError(t, store.Clear(ctx))
}
