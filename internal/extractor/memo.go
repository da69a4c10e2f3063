package extractor

import "sync"

// memo is a grow-only string-keyed table. Concurrent misses on the same key
// may both compute; the first value stored wins and later puts return it, so
// every caller converges on one value.
type memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func newMemo[V any]() *memo[V] {
	return &memo[V]{entries: make(map[string]V)}
}

func (m *memo[V]) get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *memo[V]) put(key string, v V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[key]; ok {
		return existing
	}
	m.entries[key] = v
	return v
}

func (m *memo[V]) reset() {
	m.mu.Lock()
	m.entries = make(map[string]V)
	m.mu.Unlock()
}

func (m *memo[V]) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// cached returns the memoized value for key, computing and storing it on a
// miss. Lookups are reported to the engine's observer under table.
func cached[V any](e *Engine, m *memo[V], table, key string, compute func() V) V {
	if v, ok := m.get(key); ok {
		e.obs.CacheLookup(table, true)
		return v
	}
	e.obs.CacheLookup(table, false)
	return m.put(key, compute())
}
