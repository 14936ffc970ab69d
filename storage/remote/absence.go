package remoteapi

import (
	"fmt"
	"net/http"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
)

type AbsenceRepository struct {
	c *Client
}

var _ absence.Repository = (*AbsenceRepository)(nil)

func NewAbsenceRepository(c *Client) *AbsenceRepository {
	return &AbsenceRepository{c: c}
}

// absenceRecord is the wire shape of one absence. The list endpoints also
// embed the owning teacher object; only its id is kept.
type absenceRecord struct {
	ID        int           `json:"id"`
	Article   string        `json:"article"`
	BeginDate string        `json:"beginDate"`
	EndDate   string        `json:"endDate"`
	Teacher   *absenceOwner `json:"teacher,omitempty"`
}

type absenceOwner struct {
	ID int `json:"id"`
}

// absencePayload is the mutation body: dates travel as yyyy-MM-dd strings
// with no time component.
type absencePayload struct {
	ID        int    `json:"id,omitempty"`
	Article   string `json:"article"`
	BeginDate string `json:"beginDate"`
	EndDate   string `json:"endDate"`
	IDTeacher int    `json:"idTeacher"`
}

func newAbsencePayload(a absence.Absence) absencePayload {
	return absencePayload{
		ID:        a.ID,
		Article:   a.Kind,
		BeginDate: a.BeginDate.String(),
		EndDate:   a.EndDate.String(),
		IDTeacher: a.TeacherID,
	}
}

// toAbsence parses the record's dates, normalized to midnight on receipt.
func (r absenceRecord) toAbsence() (absence.Absence, error) {
	begin, err := absence.ParseDate(r.BeginDate)
	if err != nil {
		return absence.Absence{}, err
	}
	end, err := absence.ParseDate(r.EndDate)
	if err != nil {
		return absence.Absence{}, err
	}
	a := absence.Absence{ID: r.ID, Kind: r.Article, BeginDate: begin, EndDate: end}
	if r.Teacher != nil {
		a.TeacherID = r.Teacher.ID
	}
	return a, nil
}

func (repo *AbsenceRepository) QueryByTeacher(teacherID int) ([]absence.Absence, error) {
	url := fmt.Sprintf("%s/id-teacher/%d", repo.c.absencesURL, teacherID)
	return repo.query("absence.queryByTeacher", url)
}

func (repo *AbsenceRepository) QueryBySubject(subjectID int) ([]absence.Absence, error) {
	url := fmt.Sprintf("%s/id-subject/%d", repo.c.absencesURL, subjectID)
	return repo.query("absence.queryBySubject", url)
}

func (repo *AbsenceRepository) query(op, url string) ([]absence.Absence, error) {
	var records []absenceRecord
	if err := repo.c.get(op, url, &records); err != nil {
		return nil, err
	}
	absences := make([]absence.Absence, 0, len(records))
	for _, r := range records {
		a, err := r.toAbsence()
		if err != nil {
			return nil, core.NewRemoteError(op, 0, err)
		}
		absences = append(absences, a)
	}
	return absences, nil
}

func (repo *AbsenceRepository) CreateAbsence(a absence.Absence) error {
	op := "absence.create"
	status, err := repo.c.do(op, http.MethodPost, repo.c.absencesURL, newAbsencePayload(a), nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return absence.ErrConflict
	case http.StatusBadRequest, http.StatusNotFound:
		return absence.ErrRejected
	default:
		return core.NewRemoteError(op, status, nil)
	}
}

func (repo *AbsenceRepository) UpdateAbsence(a absence.Absence) error {
	op := "absence.update"
	status, err := repo.c.do(op, http.MethodPut, repo.c.absencesURL, newAbsencePayload(a), nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return absence.ErrConflict
	case http.StatusBadRequest, http.StatusNotFound:
		return absence.ErrRejected
	default: // 500 included: server failure, retryable
		return core.NewRemoteError(op, status, nil)
	}
}

// DeleteAbsence removes a record by id. Deletion has no conflict case; any
// non-200 answer is a server failure.
func (repo *AbsenceRepository) DeleteAbsence(id int) error {
	op := "absence.delete"
	url := fmt.Sprintf("%s/id/%d", repo.c.absencesURL, id)
	status, err := repo.c.do(op, http.MethodDelete, url, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return core.NewRemoteError(op, status, nil)
	}
	return nil
}
