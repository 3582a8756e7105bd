package params

import (
	"github.com/ethereum/go-ethereum/common"
	validator "gopkg.in/go-playground/validator.v9"
)

// NewValidator returns a validator with the gallery specific tags registered.
// It panics if a tag cannot be registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation("ethaddr", func(fl validator.FieldLevel) bool {
		return common.IsHexAddress(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return validate
}
