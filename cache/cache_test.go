package cache

import (
	"context"
	"testing"
	"time"

	"recipe-api/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := New("")

	assert.False(t, c.Enabled())

	_, _, ok := c.GetToken(ctx, "key")
	assert.False(t, ok)
	assert.NoError(t, c.SetToken(ctx, "key", "user-1", time.Now().Add(time.Hour)))
	assert.NoError(t, c.DeleteToken(ctx, "key"))

	_, ok = c.GetUser(ctx, "user-1")
	assert.False(t, ok)
	assert.NoError(t, c.SetUser(ctx, &entities.User{ID: "user-1"}))
	assert.NoError(t, c.InvalidateUser(ctx, "user-1"))
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := New(srv.Addr())
	require.True(t, c.Enabled())

	expiresAt := time.Now().Add(time.Hour)
	require.NoError(t, c.SetToken(ctx, "abc", "user-1", expiresAt))

	userID, gotExpiry, ok := c.GetToken(ctx, "abc")
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)
	assert.WithinDuration(t, expiresAt, gotExpiry, time.Second)

	_, _, ok = c.GetToken(ctx, "other")
	assert.False(t, ok)

	require.NoError(t, c.DeleteToken(ctx, "abc"))
	_, _, ok = c.GetToken(ctx, "abc")
	assert.False(t, ok)
}

func TestTokenEntryExpires(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := New(srv.Addr())

	require.NoError(t, c.SetToken(ctx, "abc", "user-1", time.Now().Add(time.Hour)))
	srv.FastForward(cacheTTL + time.Second)

	_, _, ok := c.GetToken(ctx, "abc")
	assert.False(t, ok)
}

func TestUserRoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c := New(srv.Addr())

	user := &entities.User{ID: "user-1", Email: "test@example.com", Name: "Test", IsActive: true}
	require.NoError(t, c.SetUser(ctx, user))

	got, ok := c.GetUser(ctx, "user-1")
	require.True(t, ok)
	assert.Equal(t, user.Email, got.Email)
	assert.True(t, got.IsActive)

	require.NoError(t, c.InvalidateUser(ctx, "user-1"))
	_, ok = c.GetUser(ctx, "user-1")
	assert.False(t, ok)
}
