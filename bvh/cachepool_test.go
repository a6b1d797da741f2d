package bvh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePoolBorrowReturnsResetCache(t *testing.T) {
	ctx := context.Background()
	p := NewCachePool(ctx)

	c, err := p.Borrow(ctx)
	require.NoError(t, err)
	c.i = 3 // simulate a dirty cache left by a prior render

	require.NoError(t, p.Return(ctx, c))

	c2, err := p.Borrow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, c2.i)
}
