package subject

import (
	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
)

var ErrNotFound = errors.New("subject not found")

type (
	Repository interface {
		QueryByName(term string) ([]Subject, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Search(term string) ([]Subject, error) {
	term = core.CleanString(term)
	if term == "" {
		return []Subject{}, nil
	}
	return svc.repo.QueryByName(term)
}
