package teacher

import (
	"sync"
	"time"

	"github.com/tmerlos/ciriaqui/core"
)

// Searcher debounces search-box input: a lookup only fires after the quiet
// delay has elapsed since the last keystroke, and the single pending lookup
// is cancelled and restarted on each new input (trailing edge only, never
// leading).
type Searcher struct {
	svc    *Service
	delay  time.Duration
	notify func([]Teacher, error)

	mu    sync.Mutex
	timer *time.Timer
}

// NewSearcher wires svc to notify through a quiet-delay debounce. A
// non-positive delay falls back to the configured default (~500ms).
func NewSearcher(svc *Service, delay time.Duration, notify func([]Teacher, error)) *Searcher {
	if delay <= 0 {
		delay = core.Conf.SearchDebounceDelay
	}
	return &Searcher{svc: svc, delay: delay, notify: notify}
}

// Input registers a new value of the search box, restarting the quiet
// timer. A blank term only cancels whatever lookup was pending.
func (s *Searcher) Input(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if core.CleanString(term) == "" {
		return
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.notify(s.svc.Search(term))
	})
}

// Stop cancels any pending lookup.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
