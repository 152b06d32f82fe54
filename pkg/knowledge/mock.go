package knowledge

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/datafy-ai/go-mentor/pkg/llm"
)

// MockStore provides an in-memory Store implementation for testing.
//
// Collections live in a map; Search returns preset hits when configured
// and otherwise derives hits from inserted rows in insertion order. The
// last search arguments are recorded for assertions.
type MockStore struct {
	mu          sync.Mutex
	collections map[string]*mockCollection
	hits        map[string][]Hit
	shouldError error

	// LastSearch records the arguments of the most recent Search call.
	LastSearch struct {
		Collection string
		K          int
		Predicate  string
	}
}

type mockCollection struct {
	schema Schema
	rows   []Row
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		collections: make(map[string]*mockCollection),
		hits:        make(map[string][]Hit),
	}
}

// NewMockStoreWithError creates a store whose every operation fails.
func NewMockStoreWithError(message string) *MockStore {
	store := NewMockStore()
	store.shouldError = fmt.Errorf("%s", message)
	return store
}

// SetHits presets the hits returned by Search on a collection.
func (m *MockStore) SetHits(name string, hits []Hit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits[name] = hits
}

// Rows returns the rows inserted into a collection.
func (m *MockStore) Rows(name string) []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	if coll, ok := m.collections[name]; ok {
		return append([]Row(nil), coll.rows...)
	}
	return nil
}

// HasCollection implements Store.
func (m *MockStore) HasCollection(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return false, m.shouldError
	}
	_, ok := m.collections[name]
	return ok, nil
}

// CreateCollection implements Store.
func (m *MockStore) CreateCollection(_ context.Context, name string, schema Schema, _ IndexSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return m.shouldError
	}
	m.collections[name] = &mockCollection{schema: schema}
	return nil
}

// DropCollection implements Store.
func (m *MockStore) DropCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return m.shouldError
	}
	delete(m.collections, name)
	delete(m.hits, name)
	return nil
}

// CollectionSchema implements Store.
func (m *MockStore) CollectionSchema(_ context.Context, name string) (*Schema, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return nil, m.shouldError
	}
	coll, ok := m.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %s: %w", name, ErrUnknownCollection)
	}
	schema := coll.schema
	return &schema, nil
}

// Insert implements Store.
func (m *MockStore) Insert(_ context.Context, name string, rows []Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return m.shouldError
	}
	coll, ok := m.collections[name]
	if !ok {
		return fmt.Errorf("collection %s: %w", name, ErrUnknownCollection)
	}
	coll.rows = append(coll.rows, rows...)
	return nil
}

// Search implements Store. Preset hits win; otherwise inserted rows are
// returned in insertion order with descending synthetic scores.
func (m *MockStore) Search(_ context.Context, name string, _ llm.EmbeddingVector, k int, predicate string) ([]Hit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastSearch.Collection = name
	m.LastSearch.K = k
	m.LastSearch.Predicate = predicate

	if m.shouldError != nil {
		return nil, m.shouldError
	}
	if hits, ok := m.hits[name]; ok {
		if len(hits) > k {
			hits = hits[:k]
		}
		return hits, nil
	}

	coll, ok := m.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %s: %w", name, ErrUnknownCollection)
	}

	hits := make([]Hit, 0, k)
	for i, row := range coll.rows {
		if len(hits) == k {
			break
		}
		hit := Hit{Score: 1.0 - float64(i)*0.01, Metadata: make(map[string]any)}
		for key, value := range row.Values {
			switch key {
			case "id":
				hit.ID = fmt.Sprint(value)
			case "text":
				hit.Text = fmt.Sprint(value)
			default:
				hit.Metadata[key] = value
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// ListCollections implements Store.
func (m *MockStore) ListCollections(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return nil, m.shouldError
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CollectionStats implements Store.
func (m *MockStore) CollectionStats(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError != nil {
		return 0, m.shouldError
	}
	coll, ok := m.collections[name]
	if !ok {
		return 0, fmt.Errorf("collection %s: %w", name, ErrUnknownCollection)
	}
	return int64(len(coll.rows)), nil
}

// Close implements Store.
func (m *MockStore) Close() error { return nil }

// MockResourceStore provides an in-memory ResourceStore for testing.
type MockResourceStore struct {
	resources   []Resource
	shouldError error
}

// NewMockResourceStore creates a resource store holding the given
// resources in order.
func NewMockResourceStore(resources ...Resource) *MockResourceStore {
	return &MockResourceStore{resources: resources}
}

// NewMockResourceStoreWithError creates a resource store whose lookups fail.
func NewMockResourceStoreWithError(message string) *MockResourceStore {
	return &MockResourceStore{shouldError: fmt.Errorf("%s", message)}
}

// Find implements ResourceStore, preserving insertion order.
func (m *MockResourceStore) Find(_ context.Context, topic, kind string) ([]Resource, error) {
	if m.shouldError != nil {
		return nil, m.shouldError
	}
	var matched []Resource
	for _, r := range m.resources {
		if r.Topic == topic && r.Kind == kind {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
