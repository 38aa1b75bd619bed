package port

import (
	"context"

	"adbudget/internal/core/domain"
)

// BrandRepository persists brand snapshots. It is an outbound port;
// implementations must be safe for concurrent use by different brands.
type BrandRepository interface {
	// SaveBrand upserts the brand together with its campaigns, replacing
	// whatever was stored for that name.
	SaveBrand(ctx context.Context, brand domain.BrandSnapshot) error
	// LoadBrands returns every stored brand.
	LoadBrands(ctx context.Context) ([]domain.BrandSnapshot, error)
}
