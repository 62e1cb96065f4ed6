package state

import (
	"sync"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Store is the single writer of a PortfolioState. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	state   types.PortfolioState
	version uint64
	subs    map[int]chan uint64
	nextSub int
}

// NewStore returns a store holding a copy of initial
func NewStore(initial types.PortfolioState) *Store {
	return &Store{
		state: initial.Clone(),
		subs:  make(map[int]chan uint64),
	}
}

// Dispatch applies a to a copy of the current state, validates the result and
// commits it. On error the store is unchanged. The committed state is returned.
func (s *Store) Dispatch(a Action) (types.PortfolioState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := a.apply(&next); err != nil {
		return s.state.Clone(), err
	}
	if err := next.Validate(); err != nil {
		return s.state.Clone(), &ValidationError{Action: a.Name(), Cause: err}
	}

	s.state = next
	s.version++
	s.notify()
	return s.state.Clone(), nil
}

// Snapshot returns a copy of the current state and its version
func (s *Store) Snapshot() (types.PortfolioState, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), s.version
}

// Version returns the number of committed dispatches
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe returns a channel that receives the version after each commit and a
// function that ends the subscription. Slow readers only see the latest version.
func (s *Store) Subscribe() (<-chan uint64, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan uint64, 1)
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// notify must be called with mu held
func (s *Store) notify() {
	for _, ch := range s.subs {
		select {
		case ch <- s.version:
		default:
			// drop the stale value and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.version:
			default:
			}
		}
	}
}
