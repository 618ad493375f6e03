package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/delivery"
	priceformatter "github.com/x-xyz/marketfront/base/price_formatter"
	"github.com/x-xyz/marketfront/domain"
	"github.com/x-xyz/marketfront/middleware"
)

type handler struct {
	catalog  domain.CatalogUseCase
	purchase domain.PurchaseUseCase
}

type purchaseRequest struct {
	// Price is the price the client displayed, the purchase is rejected
	// when it no longer matches
	Price string `json:"price" validate:"omitempty,ether"`
}

func New(e *echo.Echo, catalog domain.CatalogUseCase, purchase domain.PurchaseUseCase) {
	h := &handler{
		catalog:  catalog,
		purchase: purchase,
	}
	g := e.Group("/items")
	g.POST("/:tokenId/purchase", h.buy, middleware.TokenId("tokenId"))
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := c.Get("tokenId").(int64)

	req := &purchaseRequest{}
	if err := c.Bind(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, ok := h.catalog.State().Find(tokenId)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}
	if req.Price != "" && !samePrice(req.Price, item.Price) {
		return delivery.MakeJsonResp(c, http.StatusConflict, xerrors.Errorf("%w: price is %s", domain.ErrConflict, item.Price))
	}

	res, err := h.purchase.Purchase(ctx, item)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func samePrice(a, b string) bool {
	x, err := priceformatter.ParseEther(a)
	if err != nil {
		return false
	}
	y, err := priceformatter.ParseEther(b)
	if err != nil {
		return false
	}
	return x.Cmp(y) == 0
}
