package ethereum

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/marketfront/base/ctx"
)

func TestThrottledClientTokens(t *testing.T) {
	req := require.New(t)
	c := NewTrottledClient(nil, 2)
	ctx := bCtx.Background()

	t1, err := c.before(ctx)
	req.NoError(err)
	t2, err := c.before(ctx)
	req.NoError(err)
	req.NotEqual(t1, t2)
	req.Len(c.tokens, 0)

	// exhausted, waits until the deadline
	tctx, cancel := bCtx.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = c.before(tctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	c.after(t1)
	c.after(t2)
	req.Len(c.tokens, 2)
}

func TestThrottledClientMinimumOne(t *testing.T) {
	c := NewTrottledClient(nil, 0)
	require.Len(t, c.tokens, 1)
	token, err := c.before(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, token)
}
