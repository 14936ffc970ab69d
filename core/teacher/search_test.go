package teacher

import (
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeRepo struct {
	teachers []Teacher
	password string

	mu      sync.Mutex
	queries []string
}

func (repo *fakeRepo) Authenticate(email, password string) (Teacher, error) {
	for _, tchr := range repo.teachers {
		if strings.EqualFold(tchr.Email, email) && password == repo.password {
			return tchr, nil
		}
	}
	return Teacher{}, ErrAuthFailed
}

func (repo *fakeRepo) QueryByName(term string) ([]Teacher, error) {
	repo.mu.Lock()
	repo.queries = append(repo.queries, term)
	repo.mu.Unlock()

	found := make([]Teacher, 0)
	for _, tchr := range repo.teachers {
		if strings.Contains(strings.ToLower(tchr.Name), strings.ToLower(term)) {
			found = append(found, tchr)
		}
	}
	return found, nil
}

func (repo *fakeRepo) queryCount() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.queries)
}

func TestServiceLogin(t *testing.T) {
	repo := &fakeRepo{
		teachers: []Teacher{{ID: 1, Name: "Ana Gomez", Email: "ana@test.test"}},
		password: "s3cret",
	}
	svc := NewService(repo)

	tchr, err := svc.Login(Credentials{Email: "ana@test.test", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tchr.ID != 1 {
		t.Errorf("Login() teacher = %v, want id 1", tchr)
	}

	if _, err = svc.Login(Credentials{Email: "ana@test.test", Password: "nope"}); err != ErrAuthFailed {
		t.Errorf("Login() error = %v, want %v", err, ErrAuthFailed)
	}
}

func TestServiceSearch(t *testing.T) {
	repo := &fakeRepo{
		teachers: []Teacher{
			{ID: 1, Name: "Mariana Ruiz"},
			{ID: 2, Name: "Ana Gomez"},
			{ID: 3, Name: "Benito Diaz"},
		},
	}
	svc := NewService(repo)

	found, err := svc.Search("ana")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Search() = %v, want 2 matches", found)
	}
	// closest name match comes first
	if found[0].ID != 2 {
		t.Errorf("Search() first = %v, want Ana Gomez", found[0])
	}
}

func TestServiceSearchBlankTerm(t *testing.T) {
	repo := &fakeRepo{teachers: []Teacher{{ID: 1, Name: "Ana Gomez"}}}
	svc := NewService(repo)

	found, err := svc.Search("   ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Search() = %v, want no matches", found)
	}
	if repo.queryCount() != 0 {
		t.Errorf("Search() hit the repository %d times on a blank term", repo.queryCount())
	}
}

func TestSearcherDebounce(t *testing.T) {
	repo := &fakeRepo{teachers: []Teacher{{ID: 1, Name: "Ana Gomez"}}}
	svc := NewService(repo)

	var (
		mu      sync.Mutex
		results [][]Teacher
	)
	done := make(chan struct{}, 10)
	s := NewSearcher(svc, 20*time.Millisecond, func(found []Teacher, err error) {
		mu.Lock()
		results = append(results, found)
		mu.Unlock()
		done <- struct{}{}
	})
	defer s.Stop()

	// rapid typing: only the last term may fire
	s.Input("a")
	s.Input("an")
	s.Input("ana")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced lookup never fired")
	}
	// quiet period with no further inputs
	time.Sleep(50 * time.Millisecond)

	if n := repo.queryCount(); n != 1 {
		t.Errorf("repository queried %d times, want 1", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(results) != 1 || len(results[0]) != 1 {
		t.Fatalf("results = %v, want one lookup with one match", results)
	}
}

func TestSearcherBlankInputCancels(t *testing.T) {
	repo := &fakeRepo{teachers: []Teacher{{ID: 1, Name: "Ana Gomez"}}}
	svc := NewService(repo)

	fired := make(chan struct{}, 1)
	s := NewSearcher(svc, 10*time.Millisecond, func([]Teacher, error) {
		fired <- struct{}{}
	})
	defer s.Stop()

	s.Input("ana")
	s.Input("") // cleared before the quiet delay elapsed

	select {
	case <-fired:
		t.Error("lookup fired after the input was cleared")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSearcherStop(t *testing.T) {
	repo := &fakeRepo{teachers: []Teacher{{ID: 1, Name: "Ana Gomez"}}}
	svc := NewService(repo)

	fired := make(chan struct{}, 1)
	s := NewSearcher(svc, 10*time.Millisecond, func([]Teacher, error) {
		fired <- struct{}{}
	})

	s.Input("ana")
	s.Stop()

	select {
	case <-fired:
		t.Error("lookup fired after Stop()")
	case <-time.After(50 * time.Millisecond):
	}
}
