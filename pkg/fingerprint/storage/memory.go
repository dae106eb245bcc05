package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"imprint-hq/imprint/pkg/fingerprint"
)

// MemoryStore implements Store using an in-memory map. All data is lost when
// the process exits. It is safe for concurrent use.
type MemoryStore struct {
	// records maps path to record.
	records map[string]*fingerprint.Record

	// mu protects access to records.
	mu sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*fingerprint.Record),
	}
}

// Upsert inserts or replaces the record for its path.
func (m *MemoryStore) Upsert(ctx context.Context, rec *fingerprint.Record) error {
	if rec == nil {
		return NewStorageError("memory", "upsert", fmt.Errorf("record cannot be nil"))
	}
	if rec.Path == "" {
		return NewStorageError("memory", "upsert", fmt.Errorf("record path cannot be empty"))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *rec
	m.records[rec.Path] = &clone
	return nil
}

// Get returns the record for path, or ErrNotFound.
func (m *MemoryStore) Get(ctx context.Context, path string) (*fingerprint.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[path]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

// List returns records matching the options, ordered by path.
func (m *MemoryStore) List(ctx context.Context, opts ListOptions) ([]*fingerprint.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []*fingerprint.Record
	for _, rec := range m.records {
		if opts.Kind != "" && rec.Kind.String() != opts.Kind {
			continue
		}
		if opts.PathPrefix != "" && !strings.HasPrefix(rec.Path, opts.PathPrefix) {
			continue
		}
		clone := *rec
		records = append(records, &clone)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records, nil
}

// Delete removes the record for path.
func (m *MemoryStore) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, path)
	return nil
}

// Count returns the number of stored records.
func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.records)), nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
