package service

import (
	"time"

	"adbudget/internal/core/domain"
)

// CampaignService recomputes campaign activation for a brand from the
// evaluation time and the brand's current budget state.
type CampaignService struct {
	brand *domain.Brand
}

// NewCampaignService binds a campaign service to a brand.
func NewCampaignService(brand *domain.Brand) *CampaignService {
	return &CampaignService{brand: brand}
}

// ActivateCampaigns overwrites the activation of every campaign. A campaign
// runs only when now is inside one of its windows and neither budget is
// exceeded. Prior activation state is ignored. It returns the number of
// active campaigns after the evaluation.
func (s *CampaignService) ActivateCampaigns(now time.Time) int {
	budgetOK := !s.brand.CheckDailyBudgetExceeded() && !s.brand.CheckMonthlyBudgetExceeded()
	active := 0
	for _, c := range s.brand.Campaigns {
		if budgetOK && c.IsWithinDayparting(now) {
			c.Activate()
			active++
			continue
		}
		c.Deactivate()
	}
	return active
}

// DeactivateCampaigns stops every campaign of the brand without waiting for
// the next evaluation.
func (s *CampaignService) DeactivateCampaigns() {
	deactivateAll(s.brand)
}
