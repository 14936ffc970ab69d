package testutil

import (
	"testing"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
	dummyapi "github.com/tmerlos/ciriaqui/storage/remote/dummy"
)

func Date(t *testing.T, value string) absence.Date {
	t.Helper()
	d, err := absence.ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", value, err)
	}
	return d
}

func SeedTeacher(db *dummyapi.DB, name, email, password string) teacher.Teacher {
	return db.AddTeacher(teacher.Teacher{Name: name, Email: email}, password)
}

func SeedSubject(db *dummyapi.DB, name string) subject.Subject {
	return db.AddSubject(subject.Subject{Name: name})
}

func SeedAbsence(t *testing.T, db *dummyapi.DB, tchr teacher.Teacher, kind, begin, end string, subjectID int) absence.Absence {
	t.Helper()
	return db.AddAbsence(absence.Absence{
		Kind:      kind,
		BeginDate: Date(t, begin),
		EndDate:   Date(t, end),
		TeacherID: tchr.ID,
	}, subjectID)
}

// Logger routes app logs into the test output.
type Logger struct {
	T *testing.T
}

var _ core.Logger = (*Logger)(nil)

func (l Logger) log(msg string, args []interface{}) {
	l.T.Helper()
	l.T.Logf("%s %v", msg, args)
}

func (l Logger) Debug(msg string, args ...interface{}) { l.log(msg, args) }
func (l Logger) Info(msg string, args ...interface{})  { l.log(msg, args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.log(msg, args) }
func (l Logger) Error(msg string, args ...interface{}) { l.log(msg, args) }
func (l Logger) Fatal(msg string, args ...interface{}) {
	l.log(msg, args)
	l.T.FailNow()
}
