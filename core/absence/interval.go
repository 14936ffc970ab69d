package absence

// DayBuckets groups the calendar days covered by a set of absences by the
// role each day plays on the calendar: a single-day absence, the first or
// last day of a range, or a day strictly inside one.
type DayBuckets struct {
	OneDay    []Date `json:"oneDay"`
	StartDay  []Date `json:"startDay"`
	MiddleDay []Date `json:"middleDay"`
	EndDay    []Date `json:"endDay"`
}

// Classify buckets every day covered by the given absences. A range of two
// adjacent days has a start and an end but contributes nothing to MiddleDay.
// The absence set is expected to be overlap-free (see Overlaps); this is not
// re-validated here.
func Classify(absences []Absence) DayBuckets {
	var b DayBuckets
	for _, a := range absences {
		if a.OneDay() {
			b.OneDay = append(b.OneDay, a.BeginDate)
			continue
		}
		b.StartDay = append(b.StartDay, a.BeginDate)
		b.EndDay = append(b.EndDay, a.EndDate)
		days := a.Days()
		if len(days) > 2 {
			b.MiddleDay = append(b.MiddleDay, days[1:len(days)-1]...)
		}
	}
	return b
}

// Contains reports whether day falls in any bucket; only such days are
// selectable on the calendar.
func (b DayBuckets) Contains(day Date) bool {
	for _, bucket := range [][]Date{b.OneDay, b.StartDay, b.MiddleDay, b.EndDay} {
		for _, d := range bucket {
			if d.Equal(day) {
				return true
			}
		}
	}
	return false
}

// Overlaps reports whether the closed interval [from, to] shares at least
// one calendar day with any existing absence. The absence with
// ID == excludeID is skipped so that editing a record does not conflict
// with itself; pass 0 when creating.
func Overlaps(from, to Date, existing []Absence, excludeID int) bool {
	for _, a := range existing {
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		// closed-interval intersection: a1 <= b2 && b1 <= a2
		if !from.After(a.EndDate) && !a.BeginDate.After(to) {
			return true
		}
	}
	return false
}

// SelectByDay resolves a clicked calendar day to the absence containing it.
// Clicking a day of the currently selected absence deselects it, and a day
// outside every absence clears the selection; ok is false in both cases.
func SelectByDay(absences []Absence, day Date, currentID int) (match Absence, ok bool) {
	for _, a := range absences {
		if a.Contains(day) {
			if a.ID == currentID {
				return Absence{}, false
			}
			return a, true
		}
	}
	return Absence{}, false
}
