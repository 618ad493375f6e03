package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketfront/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data in the {data, status} envelope. An error is
// rendered as its message and, when it wraps a known domain error, the
// status is replaced by the matching one.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if s, ok := ErrorStatus(err); ok {
			status = s
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// ErrorStatus maps domain errors to http status codes
func ErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidTokenId):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, true
	case errors.Is(err, domain.ErrWalletUnavailable), errors.Is(err, domain.ErrWalletDeclined):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrTransactionReverted), errors.Is(err, domain.ErrMarketItemsUnavailable):
		return http.StatusBadGateway, true
	case errors.Is(err, domain.ErrTransactionNotMined):
		return http.StatusGatewayTimeout, true
	}
	return 0, false
}
