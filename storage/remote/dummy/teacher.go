package dummyapi

import (
	"strings"

	"github.com/tmerlos/ciriaqui/core/teacher"
)

type teacherRepository struct {
	db *DB
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) Authenticate(email, password string) (teacher.Teacher, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for id, tchr := range repo.db.teachers {
		if strings.EqualFold(tchr.Email, email) && repo.db.passwords[id] == password {
			return *tchr, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrAuthFailed
}

func (repo *teacherRepository) QueryByName(term string) ([]teacher.Teacher, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	term = strings.ToLower(term)
	teachers := make([]teacher.Teacher, 0)
	for _, tchr := range repo.db.teachers {
		if strings.Contains(strings.ToLower(tchr.Name), term) {
			teachers = append(teachers, *tchr)
		}
	}
	return teachers, nil
}
