package consent

import (
	"io"
	"log/slog"
	"sync"

	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// Storage is a key-value backend for the consent choice.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store reads and writes the consent choice. Storage failures never reach
// the caller: a failed read is no decision and a failed write is a no-op.
type Store struct {
	storage Storage
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger logs swallowed storage failures at debug level.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store over storage.
func NewStore(storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored choice, or ChoiceNone.
func (s *Store) Get() Choice {
	if s.storage == nil {
		return ChoiceNone
	}
	v, err := s.storage.Get(Key)
	if err != nil {
		s.logger.Debug("consent storage unavailable", logger.Component("consent"), logger.Error(err))
		return ChoiceNone
	}
	return ParseChoice(v)
}

// Set stores c. ChoiceNone and unknown values are ignored.
func (s *Store) Set(c Choice) {
	if s.storage == nil || !ParseChoice(string(c)).Decided() {
		return
	}
	if err := s.storage.Set(Key, string(c)); err != nil {
		s.logger.Debug("consent storage unavailable", logger.Component("consent"), logger.Error(err))
	}
}

// Apply stores the choice for a banner action. Unknown actions store nothing.
func (s *Store) Apply(action string) Choice {
	c, ok := ChoiceForAction(action)
	if ok {
		s.Set(c)
	}
	return c
}

// Accept stores ChoiceAll.
func (s *Store) Accept() { s.Set(ChoiceAll) }

// Reject stores ChoiceNecessary.
func (s *Store) Reject() { s.Set(ChoiceNecessary) }

// ShowBanner reports whether the banner should be displayed.
func (s *Store) ShowBanner() bool {
	return !s.Get().Decided()
}

// MemoryStorage is an in-process Storage, last write wins.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value for key, or ErrNotFound.
func (m *MemoryStorage) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
