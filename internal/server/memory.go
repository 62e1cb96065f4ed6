package server

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-builder/internal/db"
)

// ExportStore records stored export archives. *db.DB satisfies it.
type ExportStore interface {
	CreateExport(ctx context.Context, e db.Export) (uuid.UUID, error)
	GetExport(ctx context.Context, id uuid.UUID) (*db.Export, error)
	ListExports(ctx context.Context, sessionID string) ([]db.Export, error)
}

var _ ExportStore = (*db.DB)(nil)

// MemoryStore keeps users and export records in process. It backs the server
// when no database is configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]db.User
	exports map[uuid.UUID]db.Export
	now     func() time.Time
}

var (
	_ UserStore   = (*MemoryStore)(nil)
	_ ExportStore = (*MemoryStore)(nil)
)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]db.User),
		exports: make(map[uuid.UUID]db.Export),
		now:     time.Now,
	}
}

// CreateUser adds a user without a password
func (m *MemoryStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return uuid.Nil, fmt.Errorf("email %s already exists", email)
		}
	}
	now := m.now()
	id := uuid.New()
	m.users[id] = db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

// GetUser returns nil, nil for unknown ids
func (m *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByEmail returns nil, nil for unknown emails
func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if email == "" {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

// CheckEmailExists reports whether email is registered
func (m *MemoryStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

// UpdatePassword sets the password hash
func (m *MemoryStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

// CreateExport records an export and returns its id
func (m *MemoryStore) CreateExport(_ context.Context, e db.Export) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = m.now()
	}
	m.exports[e.ID] = e
	return e.ID, nil
}

// GetExport returns nil, nil for unknown ids
func (m *MemoryStore) GetExport(_ context.Context, id uuid.UUID) (*db.Export, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.exports[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ListExports returns the session's exports, newest first
func (m *MemoryStore) ListExports(_ context.Context, sessionID string) ([]db.Export, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []db.Export
	for _, e := range m.exports {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
