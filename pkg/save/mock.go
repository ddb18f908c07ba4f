package save

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu       sync.RWMutex
	files    map[string][]byte
	modTimes map[string]time.Time
	now      func() time.Time
	err      error
}

var _ Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		files:    make(map[string][]byte),
		modTimes: make(map[string]time.Time),
		now:      time.Now,
	}
}

// SetError makes every following call fail with err. Pass nil to clear it.
func (m *MockStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetModTime overrides the modification time recorded for name.
func (m *MockStore) SetModTime(name string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modTimes[name] = t
}

// Put stores raw bytes, bypassing any configured error.
func (m *MockStore) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
	m.modTimes[name] = m.now()
}

func (m *MockStore) Write(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.files[name] = append([]byte(nil), data...)
	m.modTimes[name] = m.now()
	return nil
}

func (m *MockStore) Read(ctx context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return append([]byte(nil), data...), nil
}

func (m *MockStore) Exists(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.files[name]
	return ok, nil
}

func (m *MockStore) List(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	entries := make([]Entry, 0, len(m.files))
	for name := range m.files {
		entries = append(entries, Entry{Name: name, ModTime: m.modTimes[name]})
	}
	return entries, nil
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.files[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(m.files, name)
	delete(m.modTimes, name)
	return nil
}
