package catalog

import (
	"context"
	"slices"
	"sync"
)

type MemStore struct {
	mu    sync.RWMutex
	items []Product
}

func NewMemStore(seed []Product) *MemStore {
	return &MemStore{items: slices.Clone(seed)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context, f Filter) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.items))
	for _, p := range s.items {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Create(ctx context.Context, name string, price float64, category string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:       len(s.items) + 1,
		Name:     name,
		Price:    price,
		Category: category,
	}
	s.items = append(s.items, p)
	return p, nil
}

func (s *MemStore) Update(ctx context.Context, id int, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	s.items[i] = patch.Apply(s.items[i])
	return s.items[i], nil
}

func (s *MemStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// indexOf returns the position of the first product with id. Callers hold mu.
func (s *MemStore) indexOf(id int) int {
	return slices.IndexFunc(s.items, func(p Product) bool { return p.ID == id })
}
