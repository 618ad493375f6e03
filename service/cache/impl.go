package cache

import (
	"encoding/json"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache/provider"
)

type impl struct {
	cfg ServiceConfig
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	return &impl{cfg: config}
}

// GetByFunc reads key into container, on a miss getter is called and its
// value is stored and decoded into container. Failing to store the value
// is logged but not returned.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if err != ErrNotFound {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache Get failed, calling getter")
	}

	val, err := getter()
	if err != nil {
		return err
	}

	raw, err := im.cfg.Serialize(val)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, im.key(key), raw, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache Set failed")
	}
	return im.cfg.Deserialize(raw, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)

	val, _, err := im.cfg.Cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}
	if err := im.cfg.Deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)

	val, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, key, val, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)

	if err := im.cfg.Cache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) key(key string) string {
	if im.cfg.Pfx == "" {
		return key
	}
	return keys.RedisKey(im.cfg.Pfx, key)
}
