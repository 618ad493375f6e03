package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the item changed since it was displayed
	ErrConflict = errors.New("Your Item has changed")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidTokenId    = errors.New("invalid token id")

	// chain errors
	ErrMarketItemsUnavailable = errors.New("failed to fetch market items")
	ErrTransactionReverted    = errors.New("transaction reverted")
	ErrTransactionNotMined    = errors.New("transaction not confirmed")

	// wallet errors
	ErrWalletUnavailable = errors.New("no wallet available")
	ErrWalletDeclined    = errors.New("wallet connection declined")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
