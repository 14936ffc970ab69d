package absence

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/tmerlos/ciriaqui/core"
)

var (
	kindTag  = "absencekind"
	kindText = "invalid absence kind"

	dateRangeTag  = "daterange"
	dateRangeText = "end date must not be before begin date"
)

// InitValidators registers the absence validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(kindTag, kindValidation)
	core.RegisterCustomTranslation(validate, translator, kindTag, kindText)
	core.RegisterCustomTranslation(validate, translator, dateRangeTag, dateRangeText)

	validate.RegisterStructValidation(rangeStructValidation, NewAbsence{}, UpdateAbsence{})
}

func kindValidation(fl validator.FieldLevel) bool {
	return validKind(fl.Field().String())
}

// rangeStructValidation checks the candidate date range on NewAbsence and
// UpdateAbsence: a begin date must be selected and must not come after the
// end date.
func rangeStructValidation(sl validator.StructLevel) {
	switch a := sl.Current().Interface().(type) {
	case NewAbsence:
		validateRange(a.BeginDate, a.EndDate, sl)
	case UpdateAbsence:
		validateRange(a.BeginDate, a.EndDate, sl)
	}
}

func validateRange(begin, end Date, sl validator.StructLevel) {
	if begin.IsZero() {
		sl.ReportError(begin, "beginDate", "BeginDate", "required", "")
		return
	}
	if end.Before(begin) {
		sl.ReportError(end, "endDate", "EndDate", dateRangeTag, "")
	}
}
