package kv

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps entries in a map. It is the store used by tests and by
// the CLI when no database path is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string

	txMu sync.Mutex
}

var (
	_ Store      = (*MemoryStore)(nil)
	_ Transactor = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// WithinTx buffers fn's writes and applies them together on success.
func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &memoryTx{parent: m, pending: make(map[string]*string)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range tx.pending {
		if v == nil {
			delete(m.data, k)
			continue
		}
		m.data[k] = *v
	}
	return nil
}

// memoryTx overlays pending writes on the parent. A nil entry is a delete.
type memoryTx struct {
	parent  *MemoryStore
	pending map[string]*string
}

func (t *memoryTx) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := t.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	return t.parent.Get(ctx, key)
}

func (t *memoryTx) Set(_ context.Context, key, value string) error {
	t.pending[key] = &value
	return nil
}

func (t *memoryTx) Remove(_ context.Context, key string) error {
	t.pending[key] = nil
	return nil
}

func (t *memoryTx) Keys(ctx context.Context) ([]string, error) {
	base, err := t.parent.Keys(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(base)+len(t.pending))
	for _, k := range base {
		seen[k] = true
	}
	for k, v := range t.pending {
		seen[k] = v != nil
	}
	keys := make([]string, 0, len(seen))
	for k, present := range seen {
		if present {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
