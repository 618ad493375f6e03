package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/validator"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/domain/mocks"
)

var displayed = domain.CatalogState{
	Status: domain.LoadStatusLoaded,
	Items:  []*domain.DisplayItem{{TokenId: 3, Price: "2.5", Name: "Foo"}},
}

func serve(catalog domain.CatalogUseCase, purchase domain.PurchaseUseCase, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, catalog, purchase)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPurchaseHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		purchase   func(*mocks.PurchaseUseCase)
		wantStatus int
	}{
		{
			name: "ok",
			path: "/items/3/purchase",
			body: `{"price":"2.50"}`,
			purchase: func(m *mocks.PurchaseUseCase) {
				m.On("Purchase", mock.Anything, displayed.Items[0]).Return(&domain.PurchaseResult{TokenId: 3, Value: "2.5"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "no body",
			path: "/items/3/purchase",
			purchase: func(m *mocks.PurchaseUseCase) {
				m.On("Purchase", mock.Anything, displayed.Items[0]).Return(&domain.PurchaseResult{TokenId: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "invalid token id", path: "/items/abc/purchase", wantStatus: http.StatusBadRequest},
		{name: "invalid price", path: "/items/3/purchase", body: `{"price":"cheap"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown item", path: "/items/4/purchase", wantStatus: http.StatusNotFound},
		{name: "price changed", path: "/items/3/purchase", body: `{"price":"2.4"}`, wantStatus: http.StatusConflict},
		{
			name: "wallet declined",
			path: "/items/3/purchase",
			purchase: func(m *mocks.PurchaseUseCase) {
				m.On("Purchase", mock.Anything, displayed.Items[0]).Return(nil, domain.ErrWalletDeclined).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "reverted",
			path: "/items/3/purchase",
			purchase: func(m *mocks.PurchaseUseCase) {
				m.On("Purchase", mock.Anything, displayed.Items[0]).Return(nil, domain.ErrTransactionReverted).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mocks.CatalogUseCase{}
			catalog.On("State").Return(displayed)
			purchase := &mocks.PurchaseUseCase{}
			if tt.purchase != nil {
				tt.purchase(purchase)
			}

			rec := serve(catalog, purchase, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			purchase.AssertExpectations(t)
		})
	}
}
