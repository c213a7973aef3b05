package session

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

var (
	portalRoleTag  = "portalrole"
	portalRoleText = "role must be one of: user, admin"
)

// RegisterValidators registers this package's custom validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(portalRoleTag, portalRoleValidation)
	core.RegisterCustomTranslation(validate, translator, portalRoleTag, portalRoleText)
}

func portalRoleValidation(fl validator.FieldLevel) bool {
	val := Role(fl.Field().String())
	for _, role := range RegistrableRoles {
		if val == role {
			return true
		}
	}
	return false
}
