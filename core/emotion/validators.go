package emotion

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/kokoro/core"
)

var (
	patternTag  = "pattern"
	patternText = "must be one of " + strings.Join(Patterns, ", ")

	eventWindowTag  = "event_window"
	eventWindowText = "endDate cannot be before startDate"
)

// InitValidators registers this package's custom validators & translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(patternTag, patternValidation)
	core.RegisterCustomTranslation(validate, translator, patternTag, patternText)

	validate.RegisterStructValidation(eventStructValidation, EventRequest{})
	core.RegisterCustomTranslation(validate, translator, eventWindowTag, eventWindowText)
}

// patternValidation checks that the provided distribution pattern is known.
func patternValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, p := range Patterns {
		if val == p {
			return true
		}
	}
	return false
}

// eventStructValidation checks that an event window is properly ordered.
// The comparison is done at day granularity; a start and end on the same day
// is a valid (zero-length) window.
func eventStructValidation(sl validator.StructLevel) {
	ev, ok := sl.Current().Interface().(EventRequest)
	if !ok {
		return
	}
	if ev.StartDate.IsZero() || ev.EndDate.IsZero() {
		return // `required` reports these
	}
	if Day(ev.EndDate).Before(Day(ev.StartDate)) {
		sl.ReportError(ev.EndDate, "endDate", "EndDate", eventWindowTag, "")
	}
}
