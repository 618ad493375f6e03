package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain/keys"
	"github.com/x-xyz/marketfront/service/cache/provider"
	"github.com/x-xyz/marketfront/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache provider.Provider
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.cache = primitive.NewPrimitive("httpCacheMiddlewareTest", 1)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.NoError(CacheHttp(s.cache, 30*time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	res := "Hello, World"
	rec := s.serve("/catalog/listing-price", func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(res, rec.Body.String())

	rec2 := s.serve("/catalog/listing-price", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, again")
	})
	s.Equal(http.StatusOK, rec2.Code)
	s.Equal(res, rec2.Body.String())

	key := generateKey(httptest.NewRequest(http.MethodGet, "/catalog/listing-price", nil).URL.String())
	_, _, err := s.cache.Get(ctx.Background(), keys.RedisKey(cacheMiddlewarePfx, key))
	s.NoError(err)
}

func (s *cacheMiddlewareSuite) TestErrorNotCached() {
	rec := s.serve("/catalog/listing-price", func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "rpc down")
	})
	s.Equal(http.StatusBadGateway, rec.Code)

	rec2 := s.serve("/catalog/listing-price", func(c echo.Context) error {
		return c.String(http.StatusOK, "0.025")
	})
	s.Equal("0.025", rec2.Body.String())
}
