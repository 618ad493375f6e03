package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketfront/base/backoff"
	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retries is how many extra dials are attempted before giving up
	Retries int
}

// ConnectRedis builds a pool for uri and makes sure one connection can be established
func ConnectRedis(c ctx.Ctx, uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 16
	maxActive := 64
	retries := 0
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		if param[0].PoolMultiplier > 0 {
			// allowing 25% idle connection
			maxIdle = int(cpu*param[0].PoolMultiplier/4) + 1
			maxActive = int(cpu*param[0].PoolMultiplier) + 1
		}
		retries = param[0].Retries
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	b := backoff.NewExponential(time.Second, 8*time.Second)
	for {
		err := ping(p)
		if err == nil {
			break
		}
		c.WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  b.Count() + 1,
		}).Error("fail to dial Redis")
		if b.Count() >= retries {
			p.Close()
			return nil, err
		}
		if err := b.Backoff(c); err != nil {
			p.Close()
			return nil, err
		}
	}

	c.WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	conn := p.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}
