package ens

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache"
)

// errors go-ens returns for addresses without a primary name
var unnamed = map[string]bool{
	"not a resolver": true,
	"no resolution":  true,
}

type reverseResolver func(bind.ContractBackend, common.Address) (string, error)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service
	reverse reverseResolver
}

// New resolves primary ENS names through backend, results (including
// "no name") are kept in cache
func New(backend bind.ContractBackend, cache cache.Service) domain.NameResolver {
	return &impl{
		backend: backend,
		cache:   cache,
		reverse: goens.ReverseResolve,
	}
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey(keys.PfxEnsName, address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverse(im.backend, address.ToCommon())
		if err != nil && unnamed[err.Error()] {
			return "", nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}
