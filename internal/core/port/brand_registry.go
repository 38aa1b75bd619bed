package port

import "adbudget/internal/core/domain"

// BrandRegistry owns the live brand state. Each brand is guarded by its own
// lock; callbacks receive the brand with exclusive access and must not keep
// the pointer after returning.
type BrandRegistry interface {
	// Put stores brand under its name, replacing any previous entry. It
	// reports whether an entry was replaced.
	Put(brand *domain.Brand) bool
	// Update runs fn with exclusive access to the named brand. It returns
	// domain.ErrBrandNotFound when the name is unknown, otherwise fn's error.
	Update(name string, fn func(*domain.Brand) error) error
	// Names returns the registered brand names in sorted order.
	Names() []string
	// Len returns the number of registered brands.
	Len() int
}
