package priceformatter

import (
	"errors"
	"math/big"
)

// EtherDecimals is the number of decimals between wei and ether
const EtherDecimals = 18

var (
	ErrInvalidAmount   = errors.New("invalid decimal amount")
	ErrTooManyDecimals = errors.New("fractional component exceeds decimals")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrNilAmount       = errors.New("nil amount")
)

// PriceFormatter converts between on-chain base units and display strings.
// Parse must be the exact inverse of Format.
type PriceFormatter interface {
	Format(value *big.Int) (string, error)
	Parse(display string) (*big.Int, error)
}
