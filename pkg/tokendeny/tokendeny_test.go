package tokendeny

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryDenylistDeniesWithinTTL(t *testing.T) {
	denylist := NewMemoryDenylist()
	ctx := context.Background()

	assert.NoError(t, denylist.Deny(ctx, "token-a", time.Minute))

	denied, err := denylist.IsDenied(ctx, "token-a")
	assert.NoError(t, err)
	assert.True(t, denied)

	denied, err = denylist.IsDenied(ctx, "token-b")
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestMemoryDenylistIgnoresExpiredTokens(t *testing.T) {
	denylist := NewMemoryDenylist()
	ctx := context.Background()

	// Non-positive TTL means the token already expired on its own.
	assert.NoError(t, denylist.Deny(ctx, "stale", -time.Second))

	denied, err := denylist.IsDenied(ctx, "stale")
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestMemoryDenylistDropsEntriesPastExpiry(t *testing.T) {
	denylist := NewMemoryDenylist()
	ctx := context.Background()

	assert.NoError(t, denylist.Deny(ctx, "short", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	denied, err := denylist.IsDenied(ctx, "short")
	assert.NoError(t, err)
	assert.False(t, denied)
}
