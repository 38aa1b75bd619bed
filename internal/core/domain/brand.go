package domain

import (
	"fmt"
	"math"
	"strings"
)

// Brand owns a set of campaigns and tracks spend against a daily and a
// monthly budget. Budgets are plain float64 amounts; limits are fixed at
// creation.
//
// A Brand is not safe for concurrent use. Callers obtain exclusive access
// through a BrandRegistry.
type Brand struct {
	Name          string
	MonthlyBudget float64
	DailyBudget   float64

	CurrentDailySpend   float64
	CurrentMonthlySpend float64

	Campaigns []*Campaign
}

// NewBrand creates a brand with zero spend and no campaigns.
func NewBrand(name string, monthlyBudget, dailyBudget float64) (*Brand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !validAmount(monthlyBudget) {
		return nil, fmt.Errorf("%w: monthly %v", ErrInvalidBudget, monthlyBudget)
	}
	if !validAmount(dailyBudget) {
		return nil, fmt.Errorf("%w: daily %v", ErrInvalidBudget, dailyBudget)
	}
	return &Brand{
		Name:          name,
		MonthlyBudget: monthlyBudget,
		DailyBudget:   dailyBudget,
	}, nil
}

// AddCampaign appends a campaign. Duplicate names are accepted.
func (b *Brand) AddCampaign(c *Campaign) {
	b.Campaigns = append(b.Campaigns, c)
}

// CheckDailyBudgetExceeded reports whether daily spend has reached the
// daily budget. Equality counts as exceeded.
func (b *Brand) CheckDailyBudgetExceeded() bool {
	return b.CurrentDailySpend >= b.DailyBudget
}

// CheckMonthlyBudgetExceeded reports whether monthly spend has reached the
// monthly budget. Equality counts as exceeded.
func (b *Brand) CheckMonthlyBudgetExceeded() bool {
	return b.CurrentMonthlySpend >= b.MonthlyBudget
}

// ResetDailyBudget sets the daily accumulator back to zero. Campaign
// activation is left as is; it changes only on the next re-evaluation.
func (b *Brand) ResetDailyBudget() {
	b.CurrentDailySpend = 0
}

// ResetMonthlyBudget sets the monthly accumulator back to zero. Campaign
// activation is left as is.
func (b *Brand) ResetMonthlyBudget() {
	b.CurrentMonthlySpend = 0
}

// ActiveCampaigns returns the number of campaigns currently running.
func (b *Brand) ActiveCampaigns() int {
	n := 0
	for _, c := range b.Campaigns {
		if c.IsActive() {
			n++
		}
	}
	return n
}

// ValidateAmount rejects negative and non-finite spend amounts.
func ValidateAmount(amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
