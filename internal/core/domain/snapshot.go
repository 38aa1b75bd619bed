package domain

import (
	"fmt"
	"slices"
)

// BrandSnapshot is a detached copy of a brand's state. It is safe to hand
// out of the registry's critical section and is the shape used for
// persistence and the HTTP API.
type BrandSnapshot struct {
	Name                string             `json:"name"`
	MonthlyBudget       float64            `json:"monthly_budget"`
	DailyBudget         float64            `json:"daily_budget"`
	CurrentDailySpend   float64            `json:"current_daily_spend"`
	CurrentMonthlySpend float64            `json:"current_monthly_spend"`
	DailyExceeded       bool               `json:"daily_budget_exceeded"`
	MonthlyExceeded     bool               `json:"monthly_budget_exceeded"`
	Campaigns           []CampaignSnapshot `json:"campaigns"`
}

// CampaignSnapshot is a detached copy of a campaign.
type CampaignSnapshot struct {
	Name       string      `json:"name"`
	Active     bool        `json:"is_active"`
	Dayparting []HourRange `json:"dayparting"`
}

// Snapshot copies the brand's current state.
func (b *Brand) Snapshot() BrandSnapshot {
	s := BrandSnapshot{
		Name:                b.Name,
		MonthlyBudget:       b.MonthlyBudget,
		DailyBudget:         b.DailyBudget,
		CurrentDailySpend:   b.CurrentDailySpend,
		CurrentMonthlySpend: b.CurrentMonthlySpend,
		DailyExceeded:       b.CheckDailyBudgetExceeded(),
		MonthlyExceeded:     b.CheckMonthlyBudgetExceeded(),
		Campaigns:           make([]CampaignSnapshot, 0, len(b.Campaigns)),
	}
	for _, c := range b.Campaigns {
		s.Campaigns = append(s.Campaigns, CampaignSnapshot{
			Name:       c.Name,
			Active:     c.IsActive(),
			Dayparting: slices.Clone(c.Dayparting),
		})
	}
	return s
}

// RestoreBrand rebuilds a brand from a snapshot, including spend counters
// and campaign activation.
func RestoreBrand(s BrandSnapshot) (*Brand, error) {
	b, err := NewBrand(s.Name, s.MonthlyBudget, s.DailyBudget)
	if err != nil {
		return nil, err
	}
	if !validAmount(s.CurrentDailySpend) || !validAmount(s.CurrentMonthlySpend) {
		return nil, fmt.Errorf("restore %q: %w", s.Name, ErrInvalidAmount)
	}
	b.CurrentDailySpend = s.CurrentDailySpend
	b.CurrentMonthlySpend = s.CurrentMonthlySpend
	for _, cs := range s.Campaigns {
		c, err := NewCampaign(cs.Name, cs.Dayparting...)
		if err != nil {
			return nil, fmt.Errorf("restore %q campaign %q: %w", s.Name, cs.Name, err)
		}
		if cs.Active {
			c.Activate()
		}
		b.AddCampaign(c)
	}
	return b, nil
}
