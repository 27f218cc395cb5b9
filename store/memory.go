package store

import (
	"context"
	"sync"

	"github.com/dmitrymomot/slugfield"
)

// Memory is an in-process slug registry. It is safe for concurrent use.
//
// Record identities must be comparable values; they are matched with ==
// against the exclusion passed to SlugExists.
type Memory struct {
	mu    sync.RWMutex
	slugs map[string]any
}

var _ slugfield.Store = (*Memory)(nil)

// NewMemory creates an empty in-memory slug registry.
func NewMemory() *Memory {
	return &Memory{slugs: make(map[string]any)}
}

// Add registers a slug as taken by the record with the given identity.
func (m *Memory) Add(slug string, id any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slugs[slug] = id
}

// Remove releases a slug.
func (m *Memory) Remove(slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slugs, slug)
}

// SlugExists reports whether the slug is taken by a record other than the
// excluded one.
func (m *Memory) SlugExists(_ context.Context, slug string, exclude any) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.slugs[slug]
	if !ok {
		return false, nil
	}
	if exclude != nil && id == exclude {
		return false, nil
	}
	return true, nil
}
