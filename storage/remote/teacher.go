package remoteapi

import (
	"net/http"
	"net/url"

	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/teacher"
)

type TeacherRepository struct {
	c *Client
}

var _ teacher.Repository = (*TeacherRepository)(nil)

func NewTeacherRepository(c *Client) *TeacherRepository {
	return &TeacherRepository{c: c}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate posts credentials to the remote login endpoint. The remote
// may include a password attribute in its answers; it is never decoded.
func (repo *TeacherRepository) Authenticate(email, password string) (teacher.Teacher, error) {
	op := "teacher.login"
	var tchr teacher.Teacher
	status, err := repo.c.do(op, http.MethodPost, repo.c.teachersURL+"/login", loginPayload{email, password}, &tchr)
	if err != nil {
		return teacher.Teacher{}, err
	}
	switch status {
	case http.StatusOK:
		return tchr, nil
	case http.StatusBadRequest:
		return teacher.Teacher{}, teacher.ErrAuthFailed
	default:
		return teacher.Teacher{}, core.NewRemoteError(op, status, nil)
	}
}

func (repo *TeacherRepository) QueryByName(term string) ([]teacher.Teacher, error) {
	var teachers []teacher.Teacher
	u := repo.c.teachersURL + "/name/" + url.PathEscape(term)
	if err := repo.c.get("teacher.queryByName", u, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
