// Package memory provides the in-process brand store.
package memory

import (
	"slices"
	"sync"

	"adbudget/internal/core/domain"
)

// BrandRegistry implements port.BrandRegistry. The map is guarded by an
// RWMutex; every brand carries its own mutex so that operations on one
// brand are serialized while different brands proceed in parallel.
type BrandRegistry struct {
	mu     sync.RWMutex
	brands map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	brand *domain.Brand
}

// NewBrandRegistry returns an empty registry.
func NewBrandRegistry() *BrandRegistry {
	return &BrandRegistry{brands: make(map[string]*entry)}
}

// Put stores brand under its name. A replaced entry keeps its lock so that
// callers already waiting on the old brand are serialized with the new one.
func (r *BrandRegistry) Put(brand *domain.Brand) bool {
	r.mu.Lock()
	e, ok := r.brands[brand.Name]
	if !ok {
		r.brands[brand.Name] = &entry{brand: brand}
		r.mu.Unlock()
		return false
	}
	r.mu.Unlock()

	e.mu.Lock()
	e.brand = brand
	e.mu.Unlock()
	return true
}

// Update runs fn while holding the brand's lock.
func (r *BrandRegistry) Update(name string, fn func(*domain.Brand) error) error {
	r.mu.RLock()
	e, ok := r.brands[name]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrBrandNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.brand)
}

// Names returns the registered brand names in sorted order.
func (r *BrandRegistry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.brands))
	for name := range r.brands {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered brands.
func (r *BrandRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.brands)
}
