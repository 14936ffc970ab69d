package dummyapi

import (
	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
)

type absenceRepository struct {
	db *DB
}

func NewAbsenceRepository(db *DB) absence.Repository {
	return &absenceRepository{db: db}
}

func (repo *absenceRepository) QueryByTeacher(teacherID int) ([]absence.Absence, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.absencesByTeacher(teacherID), nil
}

func (repo *absenceRepository) QueryBySubject(subjectID int) ([]absence.Absence, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	absences := make([]absence.Absence, 0)
	for id, a := range repo.db.absences {
		if repo.db.subjectOf[id] == subjectID {
			absences = append(absences, *a)
		}
	}
	return absences, nil
}

// CreateAbsence rejects overlapping ranges the way the real service does.
func (repo *absenceRepository) CreateAbsence(a absence.Absence) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if absence.Overlaps(a.BeginDate, a.EndDate, repo.db.absencesByTeacher(a.TeacherID), 0) {
		return absence.ErrConflict
	}
	a.ID = repo.db.nextID()
	repo.db.absences[a.ID] = &a
	return nil
}

func (repo *absenceRepository) UpdateAbsence(a absence.Absence) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.absences[a.ID]; !ok {
		return absence.ErrRejected // the real service answers 404 here
	}
	if absence.Overlaps(a.BeginDate, a.EndDate, repo.db.absencesByTeacher(a.TeacherID), a.ID) {
		return absence.ErrConflict
	}
	repo.db.absences[a.ID] = &a
	return nil
}

func (repo *absenceRepository) DeleteAbsence(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.absences[id]; !ok {
		return core.NewRemoteError("absence.delete", 404, nil)
	}
	delete(repo.db.absences, id)
	delete(repo.db.subjectOf, id)
	return nil
}
