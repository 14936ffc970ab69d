package absence

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// BuildICS renders absences as an iCalendar document of all-day events.
// DTEND is exclusive in iCalendar, so it gets pushed one day past EndDate.
func BuildICS(absences []Absence, teacherName string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Ciriaqui//Absence Calendar//ES")

	now := time.Now().UTC()
	for _, a := range absences {
		ev := cal.AddEvent(fmt.Sprintf("absence-%d-%s@ciriaqui", a.ID, uuid.New()))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(a.BeginDate.Time)
		ev.SetAllDayEndAt(a.EndDate.AddDays(1).Time)
		summary := KindLabel(a.Kind)
		if teacherName != "" {
			summary = fmt.Sprintf("%s de %s", summary, teacherName)
		}
		ev.SetSummary(summary)
	}
	return cal.Serialize()
}
