package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketfront/base/ctx"
)

type fakeRepo struct {
	chainErr, cacheErr error
	cachePinged        bool
}

func (f *fakeRepo) PingChain(ctx.Ctx) error { return f.chainErr }

func (f *fakeRepo) PingCache(ctx.Ctx) error {
	f.cachePinged = true
	return f.cacheErr
}

func TestCheck(t *testing.T) {
	repo := &fakeRepo{}
	require.NoError(t, New(repo).Check(ctx.Background()))
	require.True(t, repo.cachePinged)

	repo = &fakeRepo{chainErr: errors.New("rpc down")}
	require.EqualError(t, New(repo).Check(ctx.Background()), "rpc down")
	require.False(t, repo.cachePinged)

	repo = &fakeRepo{cacheErr: errors.New("redis down")}
	require.EqualError(t, New(repo).Check(ctx.Background()), "redis down")
}
