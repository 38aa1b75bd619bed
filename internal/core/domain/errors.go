package domain

import "errors"

var (
	// ErrBrandNotFound is returned when an operation references a brand name
	// that is not present in the registry.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrEmptyName is returned when a brand or campaign is created without a name.
	ErrEmptyName = errors.New("empty name")
	// ErrInvalidBudget is returned for negative or non-finite budget limits.
	ErrInvalidBudget = errors.New("invalid budget")
	// ErrInvalidAmount is returned for negative or non-finite spend amounts.
	ErrInvalidAmount = errors.New("invalid spend amount")
	// ErrInvalidDayparting is returned for hour ranges outside [0,24] or with
	// start >= end, and for campaigns configured without any window.
	ErrInvalidDayparting = errors.New("invalid dayparting")
)
