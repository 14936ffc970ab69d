package absence

import (
	"github.com/go-playground/validator/v10"

	"github.com/tmerlos/ciriaqui/core"
)

// Absence kinds, as stored by the remote system.
const (
	KindExam                  = "EXAM"
	KindForceMajeure          = "MAJORFORCE"
	KindPersonal              = "PARTICULAR"
	KindMoving                = "MOVING"
	KindExceptionalPermission = "EXCEPTIONALPERMISSIONS"
	KindFamilyCare            = "TAKECAREFAMILY"
	KindDisabledChildCare     = "DISABLEDCHILD"
	KindMaternity             = "MATERNITY"
	KindStudyDay              = "STUDYDAY"
	KindContest               = "CONTEST"
)

type Kind struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Kinds lists all absence kinds with their display labels (the UI is Spanish).
var Kinds = []Kind{
	{Value: KindExam, Label: "Examen"},
	{Value: KindForceMajeure, Label: "Fuerza mayor"},
	{Value: KindPersonal, Label: "Particular"},
	{Value: KindMoving, Label: "Mudanza"},
	{Value: KindExceptionalPermission, Label: "Permiso excepcional"},
	{Value: KindFamilyCare, Label: "Cuidado de un familiar"},
	{Value: KindDisabledChildCare, Label: "Hijo discapacitado"},
	{Value: KindMaternity, Label: "Maternidad"},
	{Value: KindStudyDay, Label: "Dia de estudio"},
	{Value: KindContest, Label: "Concurso"},
}

func KindLabel(value string) string {
	for _, k := range Kinds {
		if k.Value == value {
			return k.Label
		}
	}
	return value
}

func validKind(value string) bool {
	for _, k := range Kinds {
		if k.Value == value {
			return true
		}
	}
	return false
}

// Absence is one teacher's recorded absence: a closed calendar-date
// interval tagged with a reason kind. BeginDate <= EndDate always holds.
type Absence struct {
	ID        int    `json:"id"`
	Kind      string `json:"article"`
	BeginDate Date   `json:"beginDate"`
	EndDate   Date   `json:"endDate"`
	TeacherID int    `json:"idTeacher,omitempty"`
}

// OneDay reports whether the absence covers a single calendar day.
func (a Absence) OneDay() bool { return a.BeginDate.Equal(a.EndDate) }

// Contains reports whether day falls within [BeginDate, EndDate], both ends inclusive.
func (a Absence) Contains(day Date) bool {
	return !day.Before(a.BeginDate) && !day.After(a.EndDate)
}

// Days enumerates every calendar day of the absence, both ends included.
func (a Absence) Days() []Date {
	var days []Date
	for d := a.BeginDate; !d.After(a.EndDate); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// NewAbsence contains information needed to record a new Absence.
type NewAbsence struct {
	Kind      string `json:"article" validate:"required,absencekind"`
	BeginDate Date   `json:"beginDate"`
	EndDate   Date   `json:"endDate"`
}

func (na *NewAbsence) Validate(validate *validator.Validate) error {
	na.Kind = core.CleanString(na.Kind)
	if na.EndDate.IsZero() {
		na.EndDate = na.BeginDate // single-day absence
	}
	return validate.Struct(na)
}

// UpdateAbsence defines what information may be provided to modify an
// existing Absence; the record id comes from the request path.
type UpdateAbsence struct {
	Kind      string `json:"article" validate:"required,absencekind"`
	BeginDate Date   `json:"beginDate"`
	EndDate   Date   `json:"endDate"`
}

func (ua *UpdateAbsence) Validate(validate *validator.Validate) error {
	ua.Kind = core.CleanString(ua.Kind)
	if ua.EndDate.IsZero() {
		ua.EndDate = ua.BeginDate
	}
	return validate.Struct(ua)
}
