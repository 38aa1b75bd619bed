package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/service"
	"adbudget/internal/metrics"
)

// defaultParallelism bounds how many brands a status check evaluates at once.
const defaultParallelism = 8

// BudgetUseCase implements port.BudgetUseCase. It resolves brands through
// the registry, applies the budget and campaign rules while holding the
// brand's lock and, when a repository is configured, persists the resulting
// snapshot before releasing it.
type BudgetUseCase struct {
	registry port.BrandRegistry
	repo     port.BrandRepository
	metrics  *metrics.Metrics
	logger   *slog.Logger

	parallelism int
}

// Option configures a BudgetUseCase.
type Option func(*BudgetUseCase)

// WithRepository enables snapshot persistence.
func WithRepository(repo port.BrandRepository) Option {
	return func(u *BudgetUseCase) { u.repo = repo }
}

// WithMetrics records Prometheus metrics for every operation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *BudgetUseCase) { u.metrics = m }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(u *BudgetUseCase) { u.logger = logger }
}

// WithParallelism bounds the number of brands evaluated concurrently by
// CheckCampaignStatus.
func WithParallelism(n int) Option {
	return func(u *BudgetUseCase) {
		if n > 0 {
			u.parallelism = n
		}
	}
}

// NewBudgetUseCase creates a use case over the given registry.
func NewBudgetUseCase(registry port.BrandRegistry, opts ...Option) *BudgetUseCase {
	u := &BudgetUseCase{
		registry:    registry,
		logger:      slog.Default(),
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.With(slog.String("component", "usecase.budget"))
	return u
}

// Restore loads persisted brands into the registry. It is a no-op without a
// repository and returns the number of brands restored. Every snapshot is
// validated before the first one is registered, so a failure leaves the
// registry untouched.
func (u *BudgetUseCase) Restore(ctx context.Context) (int, error) {
	if u.repo == nil {
		return 0, nil
	}
	snapshots, err := u.repo.LoadBrands(ctx)
	if err != nil {
		return 0, fmt.Errorf("load brands: %w", err)
	}
	brands := make([]*domain.Brand, 0, len(snapshots))
	for _, s := range snapshots {
		brand, err := domain.RestoreBrand(s)
		if err != nil {
			return 0, err
		}
		brands = append(brands, brand)
	}
	for _, brand := range brands {
		u.registry.Put(brand)
		u.recordBrand(brand)
	}
	return len(brands), nil
}

// InitializeBrand builds the brand from def and registers it, replacing any
// brand of the same name.
func (u *BudgetUseCase) InitializeBrand(ctx context.Context, def port.BrandDefinition) (string, error) {
	defer u.metrics.ObserveDuration("initialize_brand", time.Now())

	brand, err := def.Build()
	if err != nil {
		return "", fmt.Errorf("initialize brand %q: %w", def.Name, err)
	}
	if replaced := u.registry.Put(brand); replaced {
		u.logger.Warn("brand replaced by re-initialization", slog.String("brand", brand.Name))
	}
	err = u.registry.Update(brand.Name, func(b *domain.Brand) error {
		u.persist(ctx, b)
		u.recordBrand(b)
		return nil
	})
	if err != nil {
		return "", err
	}

	u.logger.Info("initialized brand",
		slog.String("brand", brand.Name),
		slog.Int("campaigns", len(brand.Campaigns)),
		slog.Float64("monthly_budget", brand.MonthlyBudget),
		slog.Float64("daily_budget", brand.DailyBudget),
	)
	return brand.Name, nil
}

// UpdateBrandSpend applies amount to the daily counter and then to the
// monthly counter of the brand.
func (u *BudgetUseCase) UpdateBrandSpend(ctx context.Context, brandName string, amount float64) (domain.BrandSnapshot, error) {
	defer u.metrics.ObserveDuration("update_spend", time.Now())

	if err := domain.ValidateAmount(amount); err != nil {
		return domain.BrandSnapshot{}, err
	}

	var snap domain.BrandSnapshot
	err := u.registry.Update(brandName, func(b *domain.Brand) error {
		budget := service.NewBudgetService(b)
		dailyExceeded, err := budget.UpdateDailySpend(amount)
		if err != nil {
			return err
		}
		monthlyExceeded, err := budget.UpdateMonthlySpend(amount)
		if err != nil {
			return err
		}
		if dailyExceeded {
			u.metrics.RecordBudgetExceeded(b.Name, metrics.WindowDaily)
			u.logger.Warn("daily budget exceeded, campaigns deactivated",
				slog.String("brand", b.Name),
				slog.Float64("daily_spend", b.CurrentDailySpend),
				slog.Float64("daily_budget", b.DailyBudget),
			)
		}
		if monthlyExceeded {
			u.metrics.RecordBudgetExceeded(b.Name, metrics.WindowMonthly)
			u.logger.Warn("monthly budget exceeded, campaigns deactivated",
				slog.String("brand", b.Name),
				slog.Float64("monthly_spend", b.CurrentMonthlySpend),
				slog.Float64("monthly_budget", b.MonthlyBudget),
			)
		}
		u.persist(ctx, b)
		u.recordBrand(b)
		snap = b.Snapshot()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			u.logger.Error("brand not found", slog.String("brand", brandName))
		}
		return domain.BrandSnapshot{}, err
	}

	u.logger.Info("updated brand spend",
		slog.String("brand", brandName),
		slog.Float64("amount", amount),
		slog.Float64("daily_spend", snap.CurrentDailySpend),
		slog.Float64("monthly_spend", snap.CurrentMonthlySpend),
	)
	return snap, nil
}

// ResetDailyBudgets zeroes every brand's daily spend.
func (u *BudgetUseCase) ResetDailyBudgets(ctx context.Context) error {
	defer u.metrics.ObserveDuration("reset_daily", time.Now())
	err := u.forEachBrand(ctx, func(b *domain.Brand) {
		b.ResetDailyBudget()
		u.logger.Info("reset daily budget", slog.String("brand", b.Name))
	})
	if err == nil {
		u.metrics.RecordReset(metrics.WindowDaily)
	}
	return err
}

// ResetMonthlyBudgets zeroes every brand's monthly spend.
func (u *BudgetUseCase) ResetMonthlyBudgets(ctx context.Context) error {
	defer u.metrics.ObserveDuration("reset_monthly", time.Now())
	err := u.forEachBrand(ctx, func(b *domain.Brand) {
		b.ResetMonthlyBudget()
		u.logger.Info("reset monthly budget", slog.String("brand", b.Name))
	})
	if err == nil {
		u.metrics.RecordReset(metrics.WindowMonthly)
	}
	return err
}

// CheckCampaignStatus re-evaluates all brands at the given instant. Brands
// are evaluated concurrently, each under its own lock.
func (u *BudgetUseCase) CheckCampaignStatus(ctx context.Context, at time.Time) error {
	defer u.metrics.ObserveDuration("check_status", time.Now())
	u.logger.Info("checking campaign status", slog.Time("at", at))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.parallelism)
	for _, name := range u.registry.Names() {
		name := name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := u.registry.Update(name, func(b *domain.Brand) error {
				service.NewCampaignService(b).ActivateCampaigns(at)
				u.persist(gctx, b)
				u.recordBrand(b)
				u.logger.Info("brand campaigns evaluated",
					slog.String("brand", b.Name),
					slog.String("campaigns", describeCampaigns(b)),
				)
				return nil
			})
			if errors.Is(err, domain.ErrBrandNotFound) {
				return nil
			}
			return err
		})
	}
	err := g.Wait()
	u.metrics.RecordStatusCheck(err)
	return err
}

// DeactivateBrandCampaigns stops every campaign of one brand immediately.
func (u *BudgetUseCase) DeactivateBrandCampaigns(ctx context.Context, brandName string) error {
	err := u.registry.Update(brandName, func(b *domain.Brand) error {
		service.NewCampaignService(b).DeactivateCampaigns()
		u.persist(ctx, b)
		u.recordBrand(b)
		return nil
	})
	if err != nil {
		return err
	}
	u.logger.Info("deactivated brand campaigns", slog.String("brand", brandName))
	return nil
}

// GetBrand returns a snapshot of one brand.
func (u *BudgetUseCase) GetBrand(_ context.Context, brandName string) (domain.BrandSnapshot, error) {
	var snap domain.BrandSnapshot
	err := u.registry.Update(brandName, func(b *domain.Brand) error {
		snap = b.Snapshot()
		return nil
	})
	return snap, err
}

// ListBrands returns snapshots of all brands ordered by name.
func (u *BudgetUseCase) ListBrands(ctx context.Context) ([]domain.BrandSnapshot, error) {
	names := u.registry.Names()
	out := make([]domain.BrandSnapshot, 0, len(names))
	for _, name := range names {
		snap, err := u.GetBrand(ctx, name)
		if errors.Is(err, domain.ErrBrandNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// forEachBrand applies fn to every brand in name order, one lock at a time.
func (u *BudgetUseCase) forEachBrand(ctx context.Context, fn func(*domain.Brand)) error {
	for _, name := range u.registry.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := u.registry.Update(name, func(b *domain.Brand) error {
			fn(b)
			u.persist(ctx, b)
			u.recordBrand(b)
			return nil
		})
		if err != nil && !errors.Is(err, domain.ErrBrandNotFound) {
			return err
		}
	}
	return nil
}

// persist saves the brand snapshot. The in-memory state stays authoritative:
// a failed save is logged and the operation still succeeds.
func (u *BudgetUseCase) persist(ctx context.Context, b *domain.Brand) {
	if u.repo == nil {
		return
	}
	if err := u.repo.SaveBrand(ctx, b.Snapshot()); err != nil {
		u.logger.Error("save brand", slog.String("brand", b.Name), slog.Any("error", err))
	}
}

func (u *BudgetUseCase) recordBrand(b *domain.Brand) {
	u.metrics.SetSpend(b.Name, metrics.WindowDaily, b.CurrentDailySpend)
	u.metrics.SetSpend(b.Name, metrics.WindowMonthly, b.CurrentMonthlySpend)
	u.metrics.SetActiveCampaigns(b.Name, b.ActiveCampaigns())
}

func describeCampaigns(b *domain.Brand) string {
	parts := make([]string, 0, len(b.Campaigns))
	for _, c := range b.Campaigns {
		state := "inactive"
		if c.IsActive() {
			state = "active"
		}
		parts = append(parts, c.Name+": "+state)
	}
	return strings.Join(parts, ", ")
}
