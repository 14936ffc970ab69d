package remoteapi

import (
	"net/url"

	"github.com/tmerlos/ciriaqui/core/subject"
)

type SubjectRepository struct {
	c *Client
}

var _ subject.Repository = (*SubjectRepository)(nil)

func NewSubjectRepository(c *Client) *SubjectRepository {
	return &SubjectRepository{c: c}
}

func (repo *SubjectRepository) QueryByName(term string) ([]subject.Subject, error) {
	var subjects []subject.Subject
	u := repo.c.subjectsURL + "/name/" + url.PathEscape(term)
	if err := repo.c.get("subject.queryByName", u, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}
