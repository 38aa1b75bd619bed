package port

import (
	"context"
	"time"

	"adbudget/internal/core/domain"
)

// BudgetUseCase defines the operations exposed to the scheduler, the HTTP
// API and the CLI. It is the primary port into the budget engine. Mock
// implementations can be generated from this interface for testing.
type BudgetUseCase interface {
	// InitializeBrand creates a brand with zero spend and the given
	// campaigns, all inactive. An existing brand of the same name is
	// replaced. It returns the brand name.
	InitializeBrand(ctx context.Context, def BrandDefinition) (string, error)

	// UpdateBrandSpend adds amount to both the daily and the monthly spend
	// of the brand. Reaching either budget deactivates all of the brand's
	// campaigns. domain.ErrBrandNotFound is returned for unknown brands.
	UpdateBrandSpend(ctx context.Context, brandName string, amount float64) (domain.BrandSnapshot, error)

	// ResetDailyBudgets sets every brand's daily spend to zero. Campaigns
	// stay as they are until the next status check.
	ResetDailyBudgets(ctx context.Context) error

	// ResetMonthlyBudgets sets every brand's monthly spend to zero.
	ResetMonthlyBudgets(ctx context.Context) error

	// CheckCampaignStatus re-evaluates every campaign of every brand at the
	// given instant.
	CheckCampaignStatus(ctx context.Context, at time.Time) error

	// DeactivateBrandCampaigns stops every campaign of one brand at once.
	DeactivateBrandCampaigns(ctx context.Context, brandName string) error

	// GetBrand returns a copy of the brand's current state.
	GetBrand(ctx context.Context, brandName string) (domain.BrandSnapshot, error)

	// ListBrands returns copies of all brands ordered by name.
	ListBrands(ctx context.Context) ([]domain.BrandSnapshot, error)
}

// BrandDefinition describes a brand to initialize. Campaigns keep the order
// in which they are listed.
type BrandDefinition struct {
	Name          string               `json:"name" yaml:"name"`
	MonthlyBudget float64              `json:"monthly_budget" yaml:"monthly_budget"`
	DailyBudget   float64              `json:"daily_budget" yaml:"daily_budget"`
	Campaigns     []CampaignDefinition `json:"campaigns" yaml:"campaigns"`
}

// CampaignDefinition names a campaign and its dayparting windows.
type CampaignDefinition struct {
	Name       string             `json:"name" yaml:"name"`
	Dayparting []domain.HourRange `json:"dayparting" yaml:"dayparting"`
}

// Build validates the definition and constructs the brand.
func (d BrandDefinition) Build() (*domain.Brand, error) {
	brand, err := domain.NewBrand(d.Name, d.MonthlyBudget, d.DailyBudget)
	if err != nil {
		return nil, err
	}
	for _, cd := range d.Campaigns {
		c, err := domain.NewCampaign(cd.Name, cd.Dayparting...)
		if err != nil {
			return nil, err
		}
		brand.AddCampaign(c)
	}
	return brand, nil
}
