package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestMemStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(DefaultSeed())

	cases := []struct {
		name string
		f    Filter
		want []int
	}{
		{"all", Filter{}, []int{1, 2, 3, 4, 5, 6}},
		{"category", Filter{Category: "Electronics"}, []int{1, 5}},
		{"price range inclusive", Filter{MinPrice: ptr(100.0), MaxPrice: ptr(200.0)}, []int{2, 5}},
		{"exact bounds", Filter{MinPrice: ptr(75.0), MaxPrice: ptr(80.0)}, []int{3, 4}},
		{"min only", Filter{MinPrice: ptr(150.0)}, []int{1, 2}},
		{"max only", Filter{MaxPrice: ptr(80.0)}, []int{3, 4}},
		{"combined", Filter{Category: "Apparel", MaxPrice: ptr(100.0)}, []int{6}},
		{"unknown category", Filter{Category: "Toys"}, []int{}},
		{"nan bound", Filter{MinPrice: nan()}, []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.List(ctx, tc.f)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestMemStore_SeedIsCopied(t *testing.T) {
	seed := DefaultSeed()
	s := NewMemStore(seed)
	seed[0].Name = "changed"

	got, err := s.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, "Vintage Camera", got[0].Name)
}

func TestMemStore_CreateAssignsLengthPlusOne(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(DefaultSeed())

	p, err := s.Create(ctx, "Desk Lamp", 45.5, "Home Goods")
	require.NoError(t, err)
	assert.Equal(t, Product{ID: 7, Name: "Desk Lamp", Price: 45.5, Category: "Home Goods"}, p)
}

// IDs come from the catalog length, so a create after a delete reuses an
// ID that is still held by another product.
func TestMemStore_IDCollisionAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(DefaultSeed())

	require.NoError(t, s.Delete(ctx, 1))

	a, err := s.Create(ctx, "A", 1, "X")
	require.NoError(t, err)
	b, err := s.Create(ctx, "B", 2, "X")
	require.NoError(t, err)

	assert.Equal(t, 6, a.ID)
	assert.Equal(t, 7, b.ID)

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 6, 7}, ids(all))

	// Operations by id hit the first match, the seeded row.
	up, err := s.Update(ctx, 6, Patch{Price: ptr(99.0)})
	require.NoError(t, err)
	assert.Equal(t, "Running Shoes", up.Name)
}

func TestMemStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(DefaultSeed())

	p, err := s.Update(ctx, 2, Patch{Price: ptr(175.0)})
	require.NoError(t, err)
	assert.Equal(t, Product{ID: 2, Name: "Leather Jacket", Price: 175, Category: "Apparel"}, p)

	p, err = s.Update(ctx, 2, Patch{ID: ptr(42), Name: ptr("Suede Jacket")})
	require.NoError(t, err)
	assert.Equal(t, Product{ID: 42, Name: "Suede Jacket", Price: 175, Category: "Apparel"}, p)

	_, err = s.Update(ctx, 2, Patch{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Update(ctx, 999, Patch{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(DefaultSeed())

	require.NoError(t, s.Delete(ctx, 3))
	assert.ErrorIs(t, s.Delete(ctx, 3), ErrNotFound)

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(all))
}

func TestMemStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Create(ctx, "p", 1, "c")
			_, _ = s.List(ctx, Filter{})
		}()
	}
	wg.Wait()

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 50)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}
}
