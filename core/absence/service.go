package absence

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

var (
	// errors
	ErrNotFound = errors.New("absence not found")
	// ErrConflict is the remote 409 outcome as well as the client-side
	// pre-check outcome: the candidate range shares a day with an existing
	// absence. Resubmitting the same payload cannot succeed; the range has
	// to change.
	ErrConflict = errors.New("another absence already exists within the selected date range")
	// ErrRejected is the remote 400/404 mutation outcome; resubmitting the
	// identical payload may succeed.
	ErrRejected = errors.New("the absence data was rejected by the remote service")
)

type (
	// Repository owns no data: every call goes to the remote record-keeping
	// API, which is the single source of truth for absences.
	Repository interface {
		QueryByTeacher(teacherID int) ([]Absence, error)
		QueryBySubject(subjectID int) ([]Absence, error)
		CreateAbsence(a Absence) error
		UpdateAbsence(a Absence) error
		DeleteAbsence(id int) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

// ListByTeacher returns the teacher's absences ordered by begin date.
// Callers must re-query after every successful mutation instead of patching
// results locally.
func (svc *Service) ListByTeacher(teacherID int) ([]Absence, error) {
	absences, err := svc.repo.QueryByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	sortByBeginDate(absences)
	return absences, nil
}

func (svc *Service) ListBySubject(subjectID int) ([]Absence, error) {
	absences, err := svc.repo.QueryBySubject(subjectID)
	if err != nil {
		return nil, err
	}
	sortByBeginDate(absences)
	return absences, nil
}

// Create records a new absence for tchr and returns the refreshed list.
// The overlap pre-check is advisory only: the remote service re-validates
// and remains authoritative, so a racing submission can still come back as
// ErrConflict from the repository.
func (svc *Service) Create(tchr teacher.Teacher, na NewAbsence) ([]Absence, error) {
	existing, err := svc.repo.QueryByTeacher(tchr.ID)
	if err != nil {
		return nil, errors.Wrap(err, "querying existing absences")
	}
	if Overlaps(na.BeginDate, na.EndDate, existing, 0) {
		return nil, ErrConflict
	}

	a := Absence{
		Kind:      na.Kind,
		BeginDate: na.BeginDate,
		EndDate:   na.EndDate,
		TeacherID: tchr.ID,
	}
	if err := svc.repo.CreateAbsence(a); err != nil {
		return nil, err
	}

	svc.sendConfirmation(tchr, a, "recorded")
	return svc.ListByTeacher(tchr.ID)
}

// Update modifies the absence with the given id and returns the refreshed
// list. The record being edited is excluded from the overlap pre-check so
// it cannot conflict with itself.
func (svc *Service) Update(tchr teacher.Teacher, id int, ua UpdateAbsence) ([]Absence, error) {
	existing, err := svc.repo.QueryByTeacher(tchr.ID)
	if err != nil {
		return nil, errors.Wrap(err, "querying existing absences")
	}
	if Overlaps(ua.BeginDate, ua.EndDate, existing, id) {
		return nil, ErrConflict
	}

	a := Absence{
		ID:        id,
		Kind:      ua.Kind,
		BeginDate: ua.BeginDate,
		EndDate:   ua.EndDate,
		TeacherID: tchr.ID,
	}
	if err := svc.repo.UpdateAbsence(a); err != nil {
		return nil, err
	}

	svc.sendConfirmation(tchr, a, "updated")
	return svc.ListByTeacher(tchr.ID)
}

// Delete removes the absence with the given id and returns the refreshed
// list. Deletion has no conflict case.
func (svc *Service) Delete(tchr teacher.Teacher, id int) ([]Absence, error) {
	if err := svc.repo.DeleteAbsence(id); err != nil {
		return nil, err
	}
	return svc.ListByTeacher(tchr.ID)
}

func (svc *Service) sendConfirmation(tchr teacher.Teacher, a Absence, verb string) {
	if svc.mailSvc == nil || tchr.Email == "" {
		return
	}

	msg := &core.EmailMessage{
		To:      []mail.Address{{Name: tchr.Name, Address: tchr.Email}},
		Subject: fmt.Sprintf("Absence %s: %s", verb, KindLabel(a.Kind)),
		TextContent: fmt.Sprintf(
			"Hi %s,\n\nYour absence (%s) from %s to %s was %s.\n",
			tchr.Name, KindLabel(a.Kind), a.BeginDate, a.EndDate, verb,
		),
	}
	ics := BuildICS([]Absence{a}, tchr.Name)
	_ = msg.Attach(strings.NewReader(ics), "absence.ics", "text/calendar")
	svc.mailSvc.SendMessages(msg)
}

func sortByBeginDate(absences []Absence) {
	sort.Slice(absences, func(i, j int) bool {
		return absences[i].BeginDate.Before(absences[j].BeginDate)
	})
}
