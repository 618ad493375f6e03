package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/service/cache/provider"
	"github.com/x-xyz/marketfront/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type brokenLayer struct{}

func (brokenLayer) Get(ctx.Ctx, string) ([]byte, time.Duration, error) {
	return nil, 0, errors.New("connection refused")
}
func (brokenLayer) Set(ctx.Ctx, string, []byte, time.Duration) error { return nil }
func (brokenLayer) Del(ctx.Ctx, string) error                        { return nil }

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound(ts.lyr0, ts.lyr1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)
}

func (ts *testsuite) TestGetBackfills() {
	k := "key"
	v := []byte("value")
	ts.NoError(ts.lyr1.Set(mockCtx, k, v, time.Minute))

	_, _, e := ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)

	r, _, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)

	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
}

func (ts *testsuite) TestGetMiss() {
	_, _, e := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestGetLayerError() {
	im := NewCompound(ts.lyr0, brokenLayer{})
	_, _, e := im.Get(mockCtx, "missing")
	ts.EqualError(e, "connection refused")
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, e := ts.lyr1.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, e)
}
