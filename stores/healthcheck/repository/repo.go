package repository

import (
	"bytes"
	"time"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
	hcdomain "github.com/x-xyz/marketfront/domain/healthcheck"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache/provider"
	"golang.org/x/xerrors"
)

const pingTimeout = 2 * time.Second

type impl struct {
	client domain.EthClientRepo
	cache  provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	client domain.EthClientRepo,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		client: client,
		cache:  cache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.client.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("ping chain error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	key := keys.RedisKey(keys.PfxHealthCheck, "testset")
	val := []byte(time.Now().Format(time.RFC3339Nano))
	if err := im.cache.Set(ctx, key, val, 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	got, _, err := im.cache.Get(ctx, key)
	if err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	if !bytes.Equal(got, val) {
		return xerrors.Errorf("cache returned %q, want %q", got, val)
	}
	return nil
}
