package catalog

import (
	"context"
	"errors"
	"math"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
}

// Patch carries the fields supplied in an update. Nil fields keep their
// current value.
type Patch struct {
	ID       *int     `json:"id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

func (p Patch) Apply(dst Product) Product {
	if p.ID != nil {
		dst.ID = *p.ID
	}
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	return dst
}

// Filter conditions are ANDed. Empty Category and nil bounds are not applied.
// A NaN bound matches nothing.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && !(p.Price >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(p.Price <= *f.MaxPrice) {
		return false
	}
	return true
}

func nan() *float64 {
	v := math.NaN()
	return &v
}

type Store interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	// Create assigns ID as the current catalog length plus one. After a
	// delete this can repeat an ID that is still in use.
	Create(ctx context.Context, name string, price float64, category string) (Product, error)
	Update(ctx context.Context, id int, p Patch) (Product, error)
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}
