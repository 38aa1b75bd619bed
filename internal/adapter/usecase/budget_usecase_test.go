package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adbudget/internal/adapter/memory"
	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"
	"adbudget/internal/metrics"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func at(hour int) time.Time {
	return time.Date(2023, 1, 1, hour, 0, 0, 0, time.UTC)
}

func newUseCase(opts ...Option) *BudgetUseCase {
	opts = append([]Option{WithLogger(discard)}, opts...)
	return NewBudgetUseCase(memory.NewBrandRegistry(), opts...)
}

func def(name string, monthly, daily float64, campaigns ...port.CampaignDefinition) port.BrandDefinition {
	return port.BrandDefinition{Name: name, MonthlyBudget: monthly, DailyBudget: daily, Campaigns: campaigns}
}

func camp(name string, start, end int) port.CampaignDefinition {
	return port.CampaignDefinition{Name: name, Dayparting: []domain.HourRange{{Start: start, End: end}}}
}

func TestInitializeBrand(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()

	name, err := u.InitializeBrand(ctx, def("Test Brand", 3000, 100, camp("Campaign 1", 9, 17), camp("Campaign 2", 0, 24)))
	require.NoError(t, err)
	assert.Equal(t, "Test Brand", name)

	snap, err := u.GetBrand(ctx, "Test Brand")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, snap.MonthlyBudget)
	assert.Equal(t, 100.0, snap.DailyBudget)
	require.Len(t, snap.Campaigns, 2)
	assert.Equal(t, "Campaign 1", snap.Campaigns[0].Name)
	assert.Equal(t, "Campaign 2", snap.Campaigns[1].Name)
	for _, c := range snap.Campaigns {
		assert.False(t, c.Active)
	}
}

func TestInitializeBrandRejectsInvalidDayparting(t *testing.T) {
	u := newUseCase()
	_, err := u.InitializeBrand(context.Background(), def("b", 1, 1, camp("c", 17, 9)))
	assert.ErrorIs(t, err, domain.ErrInvalidDayparting)

	_, err = u.GetBrand(context.Background(), "b")
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestInitializeBrandReplacesExisting(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()

	_, err := u.InitializeBrand(ctx, def("b", 1000, 100, camp("c", 0, 24)))
	require.NoError(t, err)
	_, err = u.UpdateBrandSpend(ctx, "b", 50)
	require.NoError(t, err)

	_, err = u.InitializeBrand(ctx, def("b", 2000, 200))
	require.NoError(t, err)

	snap, err := u.GetBrand(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, snap.MonthlyBudget)
	assert.Zero(t, snap.CurrentDailySpend)
	assert.Empty(t, snap.Campaigns)
}

func TestUpdateBrandSpend(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("Test Brand", 3000, 100, camp("Campaign 1", 9, 17)))
	require.NoError(t, err)

	snap, err := u.UpdateBrandSpend(ctx, "Test Brand", 50)
	require.NoError(t, err)
	assert.Equal(t, 50.0, snap.CurrentDailySpend)
	assert.Equal(t, 50.0, snap.CurrentMonthlySpend)
}

func TestUpdateBrandSpendNotFound(t *testing.T) {
	u := newUseCase()
	_, err := u.UpdateBrandSpend(context.Background(), "Nonexistent Brand", 50)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestUpdateBrandSpendRejectsNegative(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("b", 3000, 100))
	require.NoError(t, err)

	_, err = u.UpdateBrandSpend(ctx, "b", -10)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	snap, err := u.GetBrand(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, snap.CurrentDailySpend)
}

func TestUpdateBrandSpendExceedDeactivates(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("Test Brand", 3000, 100, camp("Campaign 1", 0, 24)))
	require.NoError(t, err)
	require.NoError(t, u.CheckCampaignStatus(ctx, at(10)))

	snap, err := u.GetBrand(ctx, "Test Brand")
	require.NoError(t, err)
	require.True(t, snap.Campaigns[0].Active)

	snap, err = u.UpdateBrandSpend(ctx, "Test Brand", 120)
	require.NoError(t, err)
	assert.True(t, snap.DailyExceeded)
	assert.False(t, snap.Campaigns[0].Active)
}

func TestResetDailyBudgets(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, _ = u.InitializeBrand(ctx, def("Brand1", 3000, 100, camp("Campaign 1", 9, 17)))
	_, _ = u.InitializeBrand(ctx, def("Brand2", 2000, 200, camp("Campaign 2", 0, 24)))
	_, _ = u.UpdateBrandSpend(ctx, "Brand1", 50)
	_, _ = u.UpdateBrandSpend(ctx, "Brand2", 100)

	require.NoError(t, u.ResetDailyBudgets(ctx))

	brands, err := u.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Zero(t, brands[0].CurrentDailySpend)
	assert.Zero(t, brands[1].CurrentDailySpend)
	assert.Equal(t, 50.0, brands[0].CurrentMonthlySpend)
	assert.Equal(t, 100.0, brands[1].CurrentMonthlySpend)
}

func TestResetMonthlyBudgets(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, _ = u.InitializeBrand(ctx, def("Brand1", 3000, 100, camp("Campaign 1", 9, 17)))
	_, _ = u.InitializeBrand(ctx, def("Brand2", 2000, 200, camp("Campaign 2", 0, 24)))
	_, _ = u.UpdateBrandSpend(ctx, "Brand1", 50)
	_, _ = u.UpdateBrandSpend(ctx, "Brand2", 100)

	require.NoError(t, u.ResetMonthlyBudgets(ctx))

	brands, err := u.ListBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, brands[0].CurrentDailySpend)
	assert.Equal(t, 100.0, brands[1].CurrentDailySpend)
	assert.Zero(t, brands[0].CurrentMonthlySpend)
	assert.Zero(t, brands[1].CurrentMonthlySpend)
}

func TestResetHonoursCancelledContext(t *testing.T) {
	u := newUseCase()
	_, _ = u.InitializeBrand(context.Background(), def("b", 3000, 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, u.ResetDailyBudgets(ctx), context.Canceled)
}

func TestCheckCampaignStatus(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("Test Brand", 3000, 100,
		camp("Day Campaign", 9, 17),
		camp("Night Campaign", 18, 23),
	))
	require.NoError(t, err)

	require.NoError(t, u.CheckCampaignStatus(ctx, at(10)))
	snap, _ := u.GetBrand(ctx, "Test Brand")
	assert.True(t, snap.Campaigns[0].Active)
	assert.False(t, snap.Campaigns[1].Active)

	require.NoError(t, u.CheckCampaignStatus(ctx, at(20)))
	snap, _ = u.GetBrand(ctx, "Test Brand")
	assert.False(t, snap.Campaigns[0].Active)
	assert.True(t, snap.Campaigns[1].Active)
}

func TestCheckCampaignStatusNoBrands(t *testing.T) {
	assert.NoError(t, newUseCase().CheckCampaignStatus(context.Background(), at(10)))
}

func TestResetThenCheckReactivates(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, _ = u.InitializeBrand(ctx, def("A", 1000, 100, camp("C1", 9, 17)))
	require.NoError(t, u.CheckCampaignStatus(ctx, at(10)))

	snap, err := u.UpdateBrandSpend(ctx, "A", 100)
	require.NoError(t, err)
	assert.False(t, snap.Campaigns[0].Active)

	require.NoError(t, u.ResetDailyBudgets(ctx))
	snap, _ = u.GetBrand(ctx, "A")
	assert.Zero(t, snap.CurrentDailySpend)
	assert.False(t, snap.Campaigns[0].Active, "reset alone must not reactivate")

	require.NoError(t, u.CheckCampaignStatus(ctx, at(10)))
	snap, _ = u.GetBrand(ctx, "A")
	assert.True(t, snap.Campaigns[0].Active)
}

func TestDeactivateBrandCampaigns(t *testing.T) {
	u := newUseCase()
	ctx := context.Background()
	_, _ = u.InitializeBrand(ctx, def("b", 1000, 100, camp("c", 0, 24)))
	require.NoError(t, u.CheckCampaignStatus(ctx, at(10)))

	require.NoError(t, u.DeactivateBrandCampaigns(ctx, "b"))
	require.NoError(t, u.DeactivateBrandCampaigns(ctx, "b"))
	snap, _ := u.GetBrand(ctx, "b")
	assert.False(t, snap.Campaigns[0].Active)

	assert.ErrorIs(t, u.DeactivateBrandCampaigns(ctx, "missing"), domain.ErrBrandNotFound)
}

func TestPersistsAfterMutation(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	var saved []domain.BrandSnapshot
	repo.EXPECT().
		SaveBrand(mock.Anything, mock.AnythingOfType("domain.BrandSnapshot")).
		Run(func(_ context.Context, s domain.BrandSnapshot) { saved = append(saved, s) }).
		Return(nil)

	u := newUseCase(WithRepository(repo))
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("b", 1000, 100, camp("c", 0, 24)))
	require.NoError(t, err)
	_, err = u.UpdateBrandSpend(ctx, "b", 30)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Zero(t, saved[0].CurrentDailySpend)
	assert.Equal(t, 30.0, saved[1].CurrentDailySpend)
}

func TestPersistFailureDoesNotFailOperation(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	repo.EXPECT().SaveBrand(mock.Anything, mock.Anything).Return(errors.New("db down"))

	u := newUseCase(WithRepository(repo))
	_, err := u.InitializeBrand(context.Background(), def("b", 1000, 100))
	require.NoError(t, err)
	snap, err := u.UpdateBrandSpend(context.Background(), "b", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, snap.CurrentDailySpend)
}

func TestRestore(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	repo.EXPECT().LoadBrands(mock.Anything).Return([]domain.BrandSnapshot{{
		Name:                "b",
		MonthlyBudget:       1000,
		DailyBudget:         100,
		CurrentDailySpend:   40,
		CurrentMonthlySpend: 400,
		Campaigns: []domain.CampaignSnapshot{
			{Name: "c", Active: true, Dayparting: []domain.HourRange{{Start: 9, End: 17}}},
		},
	}}, nil)

	u := newUseCase(WithRepository(repo))
	n, err := u.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snap, err := u.GetBrand(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, 40.0, snap.CurrentDailySpend)
	assert.True(t, snap.Campaigns[0].Active)
}

func TestRestoreWithoutRepository(t *testing.T) {
	n, err := newUseCase().Restore(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRestoreIsAllOrNothing(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	repo.EXPECT().LoadBrands(mock.Anything).Return([]domain.BrandSnapshot{
		{Name: "good", MonthlyBudget: 1000, DailyBudget: 100},
		{Name: "bad", MonthlyBudget: 1000, DailyBudget: 100, Campaigns: []domain.CampaignSnapshot{
			{Name: "c", Dayparting: []domain.HourRange{{Start: 17, End: 9}}},
		}},
	}, nil)

	u := newUseCase(WithRepository(repo))
	n, err := u.Restore(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidDayparting)
	assert.Zero(t, n)

	brands, err := u.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Empty(t, brands)
}

func TestRestoreLoadError(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	repo.EXPECT().LoadBrands(mock.Anything).Return(nil, errors.New("boom"))

	_, err := newUseCase(WithRepository(repo)).Restore(context.Background())
	assert.Error(t, err)
}

func TestMetricsRecorded(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	u := newUseCase(WithMetrics(m))
	ctx := context.Background()
	_, err := u.InitializeBrand(ctx, def("b", 1000, 100, camp("c", 0, 24)))
	require.NoError(t, err)
	_, err = u.UpdateBrandSpend(ctx, "b", 100)
	require.NoError(t, err)
	require.NoError(t, u.ResetDailyBudgets(ctx))
	require.NoError(t, u.CheckCampaignStatus(ctx, at(3)))
}

// TestConcurrentSpend ensures concurrent updates to one brand are all
// applied and that brands are isolated from each other.
func TestConcurrentSpend(t *testing.T) {
	u := newUseCase(WithParallelism(4))
	ctx := context.Background()
	_, _ = u.InitializeBrand(ctx, def("a", 1e6, 1e6, camp("c", 0, 24)))
	_, _ = u.InitializeBrand(ctx, def("b", 1e6, 1e6, camp("c", 0, 24)))

	const count = 100
	var wg sync.WaitGroup
	wg.Add(2 * count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, _ = u.UpdateBrandSpend(ctx, "a", 1)
		}()
		go func() {
			defer wg.Done()
			_ = u.CheckCampaignStatus(ctx, at(12))
		}()
	}
	wg.Wait()

	a, _ := u.GetBrand(ctx, "a")
	b, _ := u.GetBrand(ctx, "b")
	assert.Equal(t, float64(count), a.CurrentDailySpend)
	assert.Equal(t, float64(count), a.CurrentMonthlySpend)
	assert.Zero(t, b.CurrentDailySpend)
	assert.True(t, b.Campaigns[0].Active)
}
