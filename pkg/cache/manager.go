// Package cache provides a process-wide, lazily initialized key/value string
// cache. The singleton accessor is guarded by sync.Once so that concurrent
// first access constructs exactly one instance; individual reads and writes
// are guarded by an RWMutex so the cache is safe for concurrent use. There is
// no eviction, no capacity bound and no expiry.
package cache

import (
	"sync"

	"go.uber.org/zap"

	"github.com/patternworks/patterns/pkg/errors"
)

// Manager is an in-memory string cache.
type Manager struct {
	mu     sync.RWMutex
	data   map[string]string
	logger *zap.Logger
}

var (
	instance *Manager
	once     sync.Once
)

// GetInstance returns the shared process-wide cache, creating it on first
// call. All callers observe the same instance.
func GetInstance() *Manager {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New creates an independent cache manager. Prefer passing a Manager
// explicitly over reaching for GetInstance; the singleton exists for code
// that genuinely needs one shared process-wide cache.
func New() *Manager {
	return &Manager{
		data:   make(map[string]string),
		logger: zap.NewNop(),
	}
}

// WithLogger sets the diagnostic logger and returns the manager.
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Set inserts or overwrites the value for key. It always succeeds.
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()

	m.logger.Debug("cache set", zap.String("key", key))
}

// Get returns the value stored for key and whether it was present.
func (m *Manager) Get(key string) (string, bool) {
	m.mu.RLock()
	value, ok := m.data[key]
	m.mu.RUnlock()
	return value, ok
}

// GetValue is the strict variant of Get: it returns a typed not-found error
// when the key is absent.
func (m *Manager) GetValue(key string) (string, error) {
	value, ok := m.Get(key)
	if !ok {
		return "", errors.NewNotFoundError("cache entry", key)
	}
	return value, nil
}

// Delete removes key from the cache. Deleting an absent key is a no-op.
func (m *Manager) Delete(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

// Len returns the number of entries currently stored.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
