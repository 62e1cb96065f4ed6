// Package storage keeps exported archives. The MinIO store serves downloads
// through presigned URLs; the memory store keeps bytes in process.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/portfolio-builder/internal/config"
)

// ErrNotFound is returned when an object does not exist
var ErrNotFound = errors.New("object not found")

// Store persists archive bytes by key
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	// URL returns a time-limited download link, or "" when the store cannot
	// serve objects directly and the caller must stream them.
	URL(ctx context.Context, key, fileName string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by the configuration
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageMinIO:
		return NewMinIO(cfg.MinIO)
	case config.StorageMemory, "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Memory is an in-process Store
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemory creates an empty memory store
func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

// Put stores a copy of data
func (m *Memory) Put(_ context.Context, key string, data []byte, _ string) error {
	if key == "" {
		return errors.New("object key is empty")
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf
	return nil
}

// Get returns a copy of the stored bytes
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("get object %q: %w", key, ErrNotFound)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// URL always returns "": memory objects are streamed by the caller
func (m *Memory) URL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[key]; !ok {
		return "", fmt.Errorf("get object %q: %w", key, ErrNotFound)
	}
	return "", nil
}

// Delete removes an object; missing keys are ignored
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Len returns the number of stored objects
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
