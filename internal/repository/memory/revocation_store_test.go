package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationStore_LocalFallback(t *testing.T) {
	ctx := context.Background()
	s := NewRevocationStore(nil)

	revoked, err := s.IsRevoked(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "sess-1", time.Hour))

	revoked, err = s.IsRevoked(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = s.IsRevoked(ctx, "sess-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
