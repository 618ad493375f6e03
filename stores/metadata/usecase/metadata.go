package usecase

import (
	"encoding/json"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache"
	"golang.org/x/xerrors"
)

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Cache is optional, documents are fetched on every call without it
	Cache cache.Service
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.MetadataDocument, error) {
	if u.cache == nil {
		return u.fetch(c, rawUrl)
	}

	doc := &domain.MetadataDocument{}
	err := u.cache.GetByFunc(c, keys.MD5(rawUrl), doc, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.MetadataDocument, error) {
	data, err := u.webResource.GetJson(c, rawUrl)
	if err != nil {
		return nil, err
	}

	doc := &domain.MetadataDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to unmarshal metadata")
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidJsonFormat, err)
	}
	return doc, nil
}
