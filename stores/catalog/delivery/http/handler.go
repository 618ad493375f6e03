package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/delivery"
	"github.com/x-xyz/marketfront/domain"
)

type handler struct {
	catalog domain.CatalogUseCase
}

type catalogResponse struct {
	Status   domain.LoadStatus     `json:"status"`
	Items    []*domain.DisplayItem `json:"items"`
	Message  string                `json:"message,omitempty"`
	Error    string                `json:"error,omitempty"`
	LoadedAt *time.Time            `json:"loadedAt,omitempty"`
}

type listingPriceResponse struct {
	ListingPrice string `json:"listingPrice"`
}

// New registers the catalog routes, listingPriceMiddlewares wrap the
// listing price route only
func New(e *echo.Echo, catalog domain.CatalogUseCase, listingPriceMiddlewares ...echo.MiddlewareFunc) {
	h := &handler{
		catalog: catalog,
	}
	g := e.Group("/catalog")
	g.GET("", h.get)
	g.POST("/reload", h.reload)
	g.GET("/listing-price", h.listingPrice, listingPriceMiddlewares...)
}

func (h *handler) get(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, toResponse(h.catalog.State()))
}

func (h *handler) reload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	// a failed load is part of the returned state
	if _, err := h.catalog.Load(ctx); err != nil {
		ctx.WithField("err", err).Warn("catalog.Load failed")
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toResponse(h.catalog.State()))
}

func (h *handler) listingPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	price, err := h.catalog.ListingPrice(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listingPriceResponse{price})
}

func toResponse(s domain.CatalogState) catalogResponse {
	res := catalogResponse{
		Status: s.Status,
		Items:  s.Items,
		Error:  s.Err,
	}
	if res.Items == nil {
		res.Items = []*domain.DisplayItem{}
	}
	if s.IsEmpty() {
		res.Message = domain.EmptyCatalogMessage
	}
	if !s.LoadedAt.IsZero() {
		loadedAt := s.LoadedAt
		res.LoadedAt = &loadedAt
	}
	return res
}
