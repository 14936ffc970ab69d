package absence

import (
	"encoding/json"
	"testing"
)

func TestDateJSON(t *testing.T) {
	var a Absence
	payload := []byte(`{"article":"EXAM","beginDate":"2021-02-26","endDate":"2021-03-02"}`)
	if err := json.Unmarshal(payload, &a); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if a.BeginDate.String() != "2021-02-26" || a.EndDate.String() != "2021-03-02" {
		t.Errorf("Unmarshal() = %v - %v", a.BeginDate, a.EndDate)
	}

	out, err := json.Marshal(a.BeginDate)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `"2021-02-26"` {
		t.Errorf("Marshal() = %s, want %q", out, "2021-02-26")
	}
}

func TestDateMarshalZero(t *testing.T) {
	out, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Marshal() = %s, want null", out)
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{name: "within month", day: "2021-03-05", n: 1, want: "2021-03-06"},
		{name: "month boundary", day: "2021-03-31", n: 1, want: "2021-04-01"},
		{name: "leap february", day: "2020-02-28", n: 1, want: "2020-02-29"},
		{name: "backwards", day: "2021-03-01", n: -1, want: "2021-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := date(t, tt.day).AddDays(tt.n); got.String() != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestAbsenceDays(t *testing.T) {
	a := Absence{BeginDate: date(t, "2021-03-05"), EndDate: date(t, "2021-03-07")}
	days := a.Days()
	if len(days) != 3 {
		t.Fatalf("Days() = %v, want 3 days", days)
	}
	for i, want := range []string{"2021-03-05", "2021-03-06", "2021-03-07"} {
		if days[i].String() != want {
			t.Errorf("Days()[%d] = %v, want %v", i, days[i], want)
		}
	}
}
