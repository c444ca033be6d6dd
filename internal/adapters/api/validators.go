package api

import (
	"sync"

	"climateapi.app/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

func validateISODate(fl validator.FieldLevel) bool {
	return validation.IsValidDate(fl.Field().String())
}

// RegisterValidators adds the isodate tag to gin's binding validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = v.RegisterValidation("isodate", validateISODate)
		}
	})
	return err
}
