package auth

import (
	"context"
	"sync"
)

type MemStore struct {
	mu    sync.RWMutex
	users []User
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Add(ctx context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
	return nil
}

func (s *MemStore) FindByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
