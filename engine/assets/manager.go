package assets

import (
	"golang.org/x/exp/maps"

	"github.com/spaghettifunk/hoard/engine/core"
)

// Manager deduplicates loads for one resource kind. Each distinct path
// is loaded at most once while its entry lives; all callers share the
// same underlying resource through reference-counted handles. Eviction
// is caller-driven only, there is no size bound or TTL.
//
// A Manager is not safe for concurrent use; it is designed for a
// single goroutine owning a resource kind, the way an engine frame
// loop owns its texture and font sets.
type Manager[R any] struct {
	name    string
	loader  Loader[R]
	entries map[string]*Handle[R]
}

// NewManager creates an empty cache backed by the given loader. The
// name only labels log lines.
func NewManager[R any](name string, loader Loader[R]) *Manager[R] {
	return &Manager[R]{
		name:    name,
		loader:  loader,
		entries: make(map[string]*Handle[R]),
	}
}

// GetOrLoad returns a handle to the resource cached under path,
// loading it first if no entry exists. On a hit the loader is not
// invoked and the returned handle references the same resource
// instance as every other handle for that path. On a failed load the
// cache is left untouched and the same path may be retried. The caller
// owns the returned handle and must release it when done.
func (m *Manager[R]) GetOrLoad(path string) (*Handle[R], error) {
	if h, ok := m.entries[path]; ok {
		return h.Retain(), nil
	}

	value, err := m.loader.Load(path)
	if err != nil {
		// Loaders return *LoadError already; WrapError is a no-op then
		// and a safety net for ones that leak raw errors.
		return nil, WrapError(path, err)
	}

	h := newHandle(path, value, m.unload)
	m.entries[path] = h
	core.LogDebug("%s cache: loaded '%s' (id=%s, entries=%d)", m.name, path, h.ID(), len(m.entries))
	return h.Retain(), nil
}

// Contains reports whether an entry for path exists. Never triggers a
// load.
func (m *Manager[R]) Contains(path string) bool {
	_, ok := m.entries[path]
	return ok
}

// Evict removes the entry for path, dropping the cache's reference.
// The resource itself survives as long as callers still hold handles.
// Returns whether an entry was present.
func (m *Manager[R]) Evict(path string) bool {
	h, ok := m.entries[path]
	if !ok {
		return false
	}
	delete(m.entries, path)
	core.LogDebug("%s cache: evicted '%s' (id=%s)", m.name, path, h.ID())
	h.Release()
	return true
}

// Clear evicts every entry.
func (m *Manager[R]) Clear() {
	for _, path := range maps.Keys(m.entries) {
		m.Evict(path)
	}
}

func (m *Manager[R]) unload(value R) {
	if err := m.loader.Unload(value); err != nil {
		core.LogError("%s cache: unload failed: %v", m.name, err)
	}
}
