package dummyapi

import (
	"strings"

	"github.com/tmerlos/ciriaqui/core/subject"
)

type subjectRepository struct {
	db *DB
}

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) QueryByName(term string) ([]subject.Subject, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	term = strings.ToLower(term)
	subjects := make([]subject.Subject, 0)
	for _, sub := range repo.db.subjects {
		if strings.Contains(strings.ToLower(sub.Name), term) {
			subjects = append(subjects, *sub)
		}
	}
	return subjects, nil
}
