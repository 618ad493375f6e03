package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketfront/base/ctx"
)

type usecaseFunc func(ctx.Ctx) error

func (f usecaseFunc) Check(c ctx.Ctx) error { return f(c) }

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"data":{"healthy":"ok"},"status":"success"}`},
		{"unhealthy", errors.New("rpc down"), http.StatusServiceUnavailable, `{"data":"rpc down","status":"fail"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					c.Set("ctx", ctx.Background())
					return next(c)
				}
			})
			err := tt.err
			New(e, usecaseFunc(func(ctx.Ctx) error { return err }))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
