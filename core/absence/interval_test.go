package absence

import (
	"testing"
)

func date(t *testing.T, value string) Date {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", value, err)
	}
	return d
}

func TestClassify(t *testing.T) {
	absences := []Absence{
		{ID: 1, Kind: KindExam, BeginDate: date(t, "2021-03-01"), EndDate: date(t, "2021-03-01")},
		{ID: 2, Kind: KindPersonal, BeginDate: date(t, "2021-03-05"), EndDate: date(t, "2021-03-08")},
	}

	b := Classify(absences)

	wantBuckets := map[string][]string{
		"oneDay":    {"2021-03-01"},
		"startDay":  {"2021-03-05"},
		"middleDay": {"2021-03-06", "2021-03-07"},
		"endDay":    {"2021-03-08"},
	}
	gotBuckets := map[string][]Date{
		"oneDay":    b.OneDay,
		"startDay":  b.StartDay,
		"middleDay": b.MiddleDay,
		"endDay":    b.EndDay,
	}
	for name, want := range wantBuckets {
		got := gotBuckets[name]
		if len(got) != len(want) {
			t.Fatalf("Classify() %s = %v, want %v", name, got, want)
		}
		for i, d := range got {
			if d.String() != want[i] {
				t.Errorf("Classify() %s[%d] = %v, want %v", name, i, d, want[i])
			}
		}
	}
}

func TestClassifyTwoDayRangeHasNoMiddle(t *testing.T) {
	absences := []Absence{
		{ID: 1, Kind: KindMoving, BeginDate: date(t, "2021-04-01"), EndDate: date(t, "2021-04-02")},
	}
	b := Classify(absences)

	if len(b.MiddleDay) != 0 {
		t.Errorf("Classify() middleDay = %v, want empty", b.MiddleDay)
	}
	if len(b.StartDay) != 1 || !b.StartDay[0].Equal(date(t, "2021-04-01")) {
		t.Errorf("Classify() startDay = %v, want [2021-04-01]", b.StartDay)
	}
	if len(b.EndDay) != 1 || !b.EndDay[0].Equal(date(t, "2021-04-02")) {
		t.Errorf("Classify() endDay = %v, want [2021-04-02]", b.EndDay)
	}
}

func TestClassifyPartition(t *testing.T) {
	// every covered day lands in exactly one bucket
	absences := []Absence{
		{ID: 1, BeginDate: date(t, "2021-05-03"), EndDate: date(t, "2021-05-03")},
		{ID: 2, BeginDate: date(t, "2021-05-10"), EndDate: date(t, "2021-05-14")},
		{ID: 3, BeginDate: date(t, "2021-05-20"), EndDate: date(t, "2021-05-21")},
	}
	b := Classify(absences)

	seen := make(map[string]int)
	for _, bucket := range [][]Date{b.OneDay, b.StartDay, b.MiddleDay, b.EndDay} {
		for _, d := range bucket {
			seen[d.String()]++
		}
	}

	var covered int
	for _, a := range absences {
		for _, d := range a.Days() {
			covered++
			if n := seen[d.String()]; n != 1 {
				t.Errorf("day %v classified %d times, want 1", d, n)
			}
		}
	}
	if len(seen) != covered {
		t.Errorf("classified %d days, want %d", len(seen), covered)
	}
}

func TestOverlaps(t *testing.T) {
	existing := []Absence{
		{ID: 1, BeginDate: date(t, "2021-03-05"), EndDate: date(t, "2021-03-08")},
		{ID: 2, BeginDate: date(t, "2021-03-15"), EndDate: date(t, "2021-03-15")},
	}

	tests := []struct {
		name      string
		from, to  string
		excludeID int
		want      bool
	}{
		{name: "disjoint before", from: "2021-03-01", to: "2021-03-03", want: false},
		{name: "disjoint after", from: "2021-03-20", to: "2021-03-25", want: false},
		{name: "shared start day", from: "2021-03-01", to: "2021-03-05", want: true},
		{name: "shared end day", from: "2021-03-08", to: "2021-03-10", want: true},
		{name: "inside existing", from: "2021-03-06", to: "2021-03-07", want: true},
		{name: "contains existing", from: "2021-03-04", to: "2021-03-09", want: true},
		{name: "same single day", from: "2021-03-15", to: "2021-03-15", want: true},
		{name: "between the two", from: "2021-03-09", to: "2021-03-14", want: false},
		{name: "identical range excluded", from: "2021-03-05", to: "2021-03-08", excludeID: 1, want: false},
		{name: "excluded but hits other", from: "2021-03-05", to: "2021-03-15", excludeID: 1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(t, tt.from), date(t, tt.to), existing, tt.excludeID)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsEmpty(t *testing.T) {
	if Overlaps(date(t, "2021-03-01"), date(t, "2021-03-31"), nil, 0) {
		t.Error("Overlaps() = true with no existing absences, want false")
	}
}

func TestSelectByDay(t *testing.T) {
	absences := []Absence{
		{ID: 1, BeginDate: date(t, "2021-03-05"), EndDate: date(t, "2021-03-08")},
		{ID: 2, BeginDate: date(t, "2021-03-15"), EndDate: date(t, "2021-03-15")},
	}

	tests := []struct {
		name      string
		day       string
		currentID int
		wantID    int
		wantOK    bool
	}{
		{name: "start day selects", day: "2021-03-05", wantID: 1, wantOK: true},
		{name: "middle day selects", day: "2021-03-06", wantID: 1, wantOK: true},
		{name: "end day selects", day: "2021-03-08", wantID: 1, wantOK: true},
		{name: "single day selects", day: "2021-03-15", wantID: 2, wantOK: true},
		{name: "uncovered day clears", day: "2021-03-10", wantOK: false},
		{name: "same absence toggles off", day: "2021-03-06", currentID: 1, wantOK: false},
		{name: "other absence switches", day: "2021-03-15", currentID: 1, wantID: 2, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectByDay(absences, date(t, tt.day), tt.currentID)
			if ok != tt.wantOK {
				t.Fatalf("SelectByDay() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("SelectByDay() id = %v, want %v", got.ID, tt.wantID)
			}
		})
	}
}

func TestDayBucketsContains(t *testing.T) {
	b := Classify([]Absence{
		{ID: 1, BeginDate: date(t, "2021-03-05"), EndDate: date(t, "2021-03-08")},
	})

	if !b.Contains(date(t, "2021-03-06")) {
		t.Error("Contains() = false for a covered day, want true")
	}
	if b.Contains(date(t, "2021-03-09")) {
		t.Error("Contains() = true for an uncovered day, want false")
	}
}
