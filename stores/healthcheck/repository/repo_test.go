package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain/mocks"
	"github.com/x-xyz/marketfront/service/cache/provider/primitive"
)

func TestPingChain(t *testing.T) {
	eth := &mocks.EthClientRepo{}
	eth.On("BlockNumber", mock.Anything).Return(uint64(15000000), nil).Once()
	eth.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("dial tcp: connection refused")).Once()

	repo := New(eth, primitive.NewPrimitive("healthcheck", 1))
	require.NoError(t, repo.PingChain(ctx.Background()))
	require.EqualError(t, repo.PingChain(ctx.Background()), "dial tcp: connection refused")
	eth.AssertExpectations(t)
}

func TestPingCache(t *testing.T) {
	repo := New(&mocks.EthClientRepo{}, primitive.NewPrimitive("healthcheck", 1))
	require.NoError(t, repo.PingCache(ctx.Background()))
}
