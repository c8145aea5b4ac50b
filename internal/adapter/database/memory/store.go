package memory

import (
	"context"
	"sync"

	"cardwall/internal/core/domain"
	"cardwall/internal/core/port"
)

// Store is a map-backed UserStore used by tests and DB_DRIVER=memory.
// Documents are cloned on the way in and out so callers never alias the
// stored card lists.
type Store struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewStore() *Store {
	return &Store{users: make(map[string]domain.User)}
}

func (s *Store) Read(_ context.Context, ref port.UserRef) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ref.ID != "" {
		if user, ok := s.users[ref.ID]; ok {
			return user.Clone(), nil
		}
		return domain.User{}, port.ErrUserNotFound
	}

	for _, user := range s.users {
		if user.Username == ref.Username {
			return user.Clone(), nil
		}
	}

	return domain.User{}, port.ErrUserNotFound
}

func (s *Store) Create(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user.Clone()
	return nil
}

func (s *Store) Update(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user.Clone()
	return nil
}
