package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/service/cache/provider"
)

// minimum size freecache accepts
const minSizeMB = 1

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		im.logger(c, key).WithField("err", err).Error("freecache.GetWithExpiration failed")
		return nil, 0, err
	}
	if ttl == 0 {
		return val, 0, nil
	}
	// freecache reports the absolute expiry in unix seconds
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		im.logger(c, key).WithField("err", err).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

func (im *impl) logger(c ctx.Ctx, key string) log.Logger {
	return c.WithFields(log.Fields{"cache": im.name, "key": key})
}
