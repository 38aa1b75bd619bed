// Package service holds the budget and campaign rules applied to a single
// brand. Services operate on a *domain.Brand the caller already holds
// exclusively; they do no locking and no I/O.
package service

import (
	"adbudget/internal/core/domain"
)

// BudgetService applies spend to a brand and deactivates all of its
// campaigns as soon as a budget is reached.
type BudgetService struct {
	brand *domain.Brand
}

// NewBudgetService binds a budget service to a brand.
func NewBudgetService(brand *domain.Brand) *BudgetService {
	return &BudgetService{brand: brand}
}

// UpdateDailySpend adds amount to the daily accumulator. It reports whether
// the daily budget is exceeded afterwards, in which case every campaign has
// been deactivated regardless of dayparting.
func (s *BudgetService) UpdateDailySpend(amount float64) (bool, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return false, err
	}
	s.brand.CurrentDailySpend += amount
	if s.brand.CheckDailyBudgetExceeded() {
		s.DeactivateCampaigns()
		return true, nil
	}
	return false, nil
}

// UpdateMonthlySpend is the monthly counterpart of UpdateDailySpend.
func (s *BudgetService) UpdateMonthlySpend(amount float64) (bool, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return false, err
	}
	s.brand.CurrentMonthlySpend += amount
	if s.brand.CheckMonthlyBudgetExceeded() {
		s.DeactivateCampaigns()
		return true, nil
	}
	return false, nil
}

// DeactivateCampaigns stops every campaign of the brand.
func (s *BudgetService) DeactivateCampaigns() {
	deactivateAll(s.brand)
}

func deactivateAll(b *domain.Brand) {
	for _, c := range b.Campaigns {
		c.Deactivate()
	}
}
