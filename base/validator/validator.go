package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	priceformatter "github.com/x-xyz/marketfront/base/price_formatter"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New returns a validator with the custom tags registered:
//   ether: a non-negative decimal amount with at most 18 fractional digits
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("ether", isEther); err != nil {
		panic(err)
	}
	return v
}

func isEther(fl validator.FieldLevel) bool {
	_, err := priceformatter.ParseEther(fl.Field().String())
	return err == nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
