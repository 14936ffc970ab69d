package teacher

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/tmerlos/ciriaqui/core"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
	// ErrAuthFailed is the remote 400 login outcome.
	ErrAuthFailed = errors.New("authentication failed")
)

type (
	Repository interface {
		Authenticate(email, password string) (Teacher, error)
		// QueryByName matches teachers whose name contains the term; any
		// password attribute the remote sends along is never surfaced.
		QueryByName(term string) ([]Teacher, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login exchanges credentials for the session Teacher via the remote
// login endpoint. A bad email/password pair comes back as ErrAuthFailed.
func (svc *Service) Login(creds Credentials) (Teacher, error) {
	return svc.repo.Authenticate(creds.Email, creds.Password)
}

// Search returns teachers matching term, best name match first.
func (svc *Service) Search(term string) ([]Teacher, error) {
	term = core.CleanString(term, true /* lower */)
	if term == "" {
		return []Teacher{}, nil
	}
	found, err := svc.repo.QueryByName(term)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(found, func(i, j int) bool {
		return nameRatio(found[i].Name, term) > nameRatio(found[j].Name, term)
	})
	return found, nil
}

func nameRatio(name, term string) float64 {
	name = strings.ToLower(name)
	return difflib.NewMatcher(strings.Split(term, ""), strings.Split(name, "")).QuickRatio()
}
