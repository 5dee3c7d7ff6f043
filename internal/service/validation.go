package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

// NewValidator builds a validator with the content-model choice tags
// registered. Services share one instance.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("presskind", func(fl validator.FieldLevel) bool {
		return models.ValidPressKind(fl.Field().String())
	})
	v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return models.ValidEventType(fl.Field().String())
	})
	v.RegisterValidation("eventformat", func(fl validator.FieldLevel) bool {
		return models.ValidEventFormat(fl.Field().String())
	})
	v.RegisterValidation("articletype", func(fl validator.FieldLevel) bool {
		return models.ValidArticleType(fl.Field().String())
	})
	v.RegisterValidation("indextype", func(fl validator.FieldLevel) bool {
		return models.ValidIndexType(fl.Field().String())
	})
	return v
}
