package priceformatter

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

var decimalPattern = regexp.MustCompile(`^-?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

type impl struct {
	decimals int32
}

// NewPriceFormatter returns a formatter for a currency with the given decimals
func NewPriceFormatter(decimals int32) PriceFormatter {
	return &impl{decimals: decimals}
}

func (f *impl) Format(value *big.Int) (string, error) {
	if value == nil {
		return "", ErrNilAmount
	}
	return FormatUnits(value, f.decimals), nil
}

func (f *impl) Parse(display string) (*big.Int, error) {
	return ParseUnits(display, f.decimals)
}

// FormatUnits renders value / 10^decimals, always keeping at least one
// fractional digit: 1000000000000000000 with 18 decimals is "1.0".
func FormatUnits(value *big.Int, decimals int32) string {
	s := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseUnits converts a decimal string to value * 10^decimals. It rejects
// amounts that cannot be represented exactly in base units.
func ParseUnits(display string, decimals int32) (*big.Int, error) {
	display = strings.TrimSpace(display)
	if !decimalPattern.MatchString(display) {
		return nil, xerrors.Errorf("%q: %w", display, ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, xerrors.Errorf("%q: %w", display, ErrInvalidAmount)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("%q: %w", display, ErrNegativeAmount)
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, xerrors.Errorf("%q: %w", display, ErrTooManyDecimals)
	}
	return shifted.BigInt(), nil
}

// FormatEther is FormatUnits with 18 decimals
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// ParseEther is ParseUnits with 18 decimals
func ParseEther(ether string) (*big.Int, error) {
	return ParseUnits(ether, EtherDecimals)
}
