// Package session manages editing sessions. Each session owns one state.Store;
// the manager persists states after edits and runs bio generation in the
// background.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/llm"
	"github.com/jonathan/portfolio-builder/internal/logging"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// ErrNotFound is returned for unknown session ids
var ErrNotFound = errors.New("session not found")

// ErrBioInProgress is returned when a bio is already being generated for the session
var ErrBioInProgress = errors.New("bio generation already in progress")

// Repository persists session states. Implementations must be safe for
// concurrent use.
type Repository interface {
	SavePortfolio(ctx context.Context, sessionID, ownerID string, st types.PortfolioState) error
	LoadPortfolio(ctx context.Context, sessionID string) (*Record, error)
	DeletePortfolio(ctx context.Context, sessionID string) error
}

// Record is a persisted session
type Record struct {
	SessionID string
	OwnerID   string
	State     types.PortfolioState
	UpdatedAt time.Time
}

// Summary is one entry of an owner's session list
type Summary struct {
	SessionID  string    `json:"session_id"`
	TemplateID string    `json:"template_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Lister is implemented by repositories that can list an owner's sessions
type Lister interface {
	ListPortfolios(ctx context.Context, ownerID string, limit int) ([]Summary, error)
}

// BioWriter produces a bio from skills and experience
type BioWriter interface {
	Generate(ctx context.Context, req llm.BioRequest) (string, error)
}

// BioState is the lifecycle of a background bio request
type BioState string

// Bio states
const (
	BioIdle       BioState = "idle"
	BioGenerating BioState = "generating"
	BioDone       BioState = "done"
	BioFailed     BioState = "failed"
)

// BioStatus is reported to clients polling for the bio
type BioStatus struct {
	Status    BioState  `json:"status"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is one editing session
type Session struct {
	ID        string
	OwnerID   string
	CreatedAt time.Time
	Store     *state.Store

	mu      sync.Mutex
	bio     BioStatus
	updated time.Time
}

// Bio returns the current bio generation status
func (s *Session) Bio() BioStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bio
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.updated = now
	s.mu.Unlock()
}

func (s *Session) updatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

func (s *Session) setBio(b BioStatus) {
	s.mu.Lock()
	s.bio = b
	s.mu.Unlock()
}

// startBio flips the status to generating unless a request is already running
func (s *Session) startBio(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bio.Status == BioGenerating {
		return false
	}
	s.bio = BioStatus{Status: BioGenerating, UpdatedAt: now}
	return true
}

// Options configure a Manager
type Options struct {
	Repository Repository
	Bio        BioWriter
	Logger     *zap.Logger
	// BioTimeout bounds one background generation. Defaults to 30s.
	BioTimeout time.Duration
	// Seed returns the state new sessions start from. Defaults to types.SeedState.
	Seed func() types.PortfolioState
	Now  func() time.Time
}

// Manager owns the live sessions
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	repo       Repository
	bio        BioWriter
	logger     *zap.Logger
	bioTimeout time.Duration
	seed       func() types.PortfolioState
	now        func() time.Time
	wg         sync.WaitGroup
}

// NewManager returns a manager with opts applied
func NewManager(opts Options) *Manager {
	m := &Manager{
		sessions:   make(map[string]*Session),
		repo:       opts.Repository,
		bio:        opts.Bio,
		logger:     logging.OrNop(opts.Logger),
		bioTimeout: opts.BioTimeout,
		seed:       opts.Seed,
		now:        opts.Now,
	}
	if m.bioTimeout <= 0 {
		m.bioTimeout = 30 * time.Second
	}
	if m.seed == nil {
		m.seed = types.SeedState
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Create starts a session. A nil initial state means the seed state; entries
// of an initial state without ids get fresh ones.
func (m *Manager) Create(ctx context.Context, ownerID string, initial *types.PortfolioState) (*Session, error) {
	st := m.seed()
	if initial != nil {
		st = state.WithIDs(*initial)
		if err := st.Validate(); err != nil {
			return nil, &state.ValidationError{Action: "create_session", Cause: err}
		}
	}

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: now,
		Store:     state.NewStore(st),
		bio:       BioStatus{Status: BioIdle, UpdatedAt: now},
		updated:   now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.persist(ctx, s)
	m.logger.Info("session created", zap.String("session_id", s.ID), zap.String("owner_id", ownerID))
	return s, nil
}

// Get returns the session, restoring it from the repository when it is not in memory
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}
	if m.repo == nil {
		return nil, ErrNotFound
	}

	rec, err := m.repo.LoadPortfolio(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		m.logger.Warn("failed to load session", zap.String("session_id", id), zap.Error(err))
		return nil, ErrNotFound
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	s = &Session{
		ID:        rec.SessionID,
		OwnerID:   rec.OwnerID,
		CreatedAt: rec.UpdatedAt,
		Store:     state.NewStore(rec.State),
		bio:       BioStatus{Status: BioIdle, UpdatedAt: m.now()},
		updated:   rec.UpdatedAt,
	}
	m.sessions[id] = s
	return s, nil
}

// Delete drops the session from memory and the repository
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if m.repo != nil {
		if err := m.repo.DeletePortfolio(ctx, id); err != nil {
			m.logger.Warn("failed to delete persisted session", zap.String("session_id", id), zap.Error(err))
		} else {
			ok = true
		}
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Dispatch applies a to the session's store and persists the result. Persistence
// failures are logged and do not fail the edit.
func (m *Manager) Dispatch(ctx context.Context, id string, a state.Action) (types.PortfolioState, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return types.PortfolioState{}, err
	}
	st, err := s.Store.Dispatch(a)
	if err != nil {
		return st, err
	}
	s.touch(m.now())
	m.persist(ctx, s)
	return st, nil
}

// List returns an owner's sessions, most recently edited first. A repository
// that implements Lister answers for persisted sessions; otherwise the sessions
// held in memory are listed. limit <= 0 means no limit.
func (m *Manager) List(ctx context.Context, ownerID string, limit int) ([]Summary, error) {
	if ownerID == "" {
		return nil, nil
	}
	if l, ok := m.repo.(Lister); ok {
		return l.ListPortfolios(ctx, ownerID, limit)
	}

	m.mu.RLock()
	out := make([]Summary, 0)
	for _, s := range m.sessions {
		if s.OwnerID != ownerID {
			continue
		}
		st, _ := s.Store.Snapshot()
		out = append(out, Summary{SessionID: s.ID, TemplateID: st.SelectedTemplate, UpdatedAt: s.updatedAt()})
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].SessionID < out[j].SessionID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of sessions held in memory
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) persist(ctx context.Context, s *Session) {
	if m.repo == nil {
		return
	}
	st, version := s.Store.Snapshot()
	if err := m.repo.SavePortfolio(ctx, s.ID, s.OwnerID, st); err != nil {
		m.logger.Warn("failed to persist session",
			zap.String("session_id", s.ID),
			zap.Uint64("version", version),
			zap.Error(err))
	}
}

// GenerateBio starts bio generation in the background and returns immediately.
// On success the bio is applied through the session's store; on failure the
// status records the error and the state is left alone.
func (m *Manager) GenerateBio(ctx context.Context, id string, req llm.BioRequest) error {
	s, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	if len(req.Skills) == 0 || req.Experience == "" {
		return llm.ErrEmptyInput
	}
	if m.bio == nil {
		return &llm.GenerationError{Message: "bio generation is not configured"}
	}
	if !s.startBio(m.now()) {
		return ErrBioInProgress
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		// detached from the request that started it
		bctx, cancel := context.WithTimeout(context.Background(), m.bioTimeout)
		defer cancel()

		bio, err := m.bio.Generate(bctx, req)
		if err != nil {
			m.logger.Warn("bio generation failed", zap.String("session_id", s.ID), zap.Error(err))
			s.setBio(BioStatus{Status: BioFailed, Message: "Failed to generate bio", UpdatedAt: m.now()})
			return
		}
		if _, err := m.Dispatch(bctx, s.ID, state.UpdateUserData{Patch: types.UserDataPatch{Bio: &bio}}); err != nil {
			m.logger.Warn("failed to apply generated bio", zap.String("session_id", s.ID), zap.Error(err))
			s.setBio(BioStatus{Status: BioFailed, Message: "Failed to apply bio", UpdatedAt: m.now()})
			return
		}
		s.setBio(BioStatus{Status: BioDone, UpdatedAt: m.now()})
	}()
	return nil
}

// Wait blocks until background work has finished
func (m *Manager) Wait() {
	m.wg.Wait()
}
