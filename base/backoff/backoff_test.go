package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	ctx := context.Background()

	want := []time.Duration{1, 2, 4, 4, 4}
	for i, w := range want {
		req.Equal(w*time.Millisecond, b.NextDuration, "step %d", i)
		req.NoError(b.Backoff(ctx))
	}
	req.Equal(len(want), b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestConstant(t *testing.T) {
	req := require.New(t)
	b := NewConstant(2 * time.Millisecond)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.Equal(2*time.Millisecond, b.LastDuration)
}

func TestBackoff_ContextDone(t *testing.T) {
	req := require.New(t)
	b := NewConstant(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Count())
}
