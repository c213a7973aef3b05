package routine

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Tahsina2226/course-event-management/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be a weekday name, e.g. Monday"

	weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// RegisterValidators registers this package's custom validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)
}

func weekdayValidation(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	for _, day := range weekdays {
		if val == day {
			return true
		}
	}
	return false
}
