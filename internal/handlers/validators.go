package handlers

import (
	"sync"

	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("reportdate", func(fl validator.FieldLevel) bool {
			return utils.IsReportTime(fl.Field().String())
		})
	})
}
