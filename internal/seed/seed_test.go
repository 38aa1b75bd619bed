package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
	"adbudget/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

const doc = `
brands:
  - name: Test Brand
    monthly_budget: 3000
    daily_budget: 100
    campaigns:
      - name: Day Campaign
        dayparting: [{start: 9, end: 17}]
      - name: Split Campaign
        dayparting:
          - {start: 6, end: 9}
          - {start: 18, end: 23}
  - name: Other
    monthly_budget: 500
    daily_budget: 20
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, f.Brands, 2)

	b := f.Brands[0]
	assert.Equal(t, "Test Brand", b.Name)
	assert.Equal(t, 3000.0, b.MonthlyBudget)
	assert.Equal(t, 100.0, b.DailyBudget)
	require.Len(t, b.Campaigns, 2)
	assert.Equal(t, []domain.HourRange{{Start: 6, End: 9}, {Start: 18, End: 23}}, b.Campaigns[1].Dayparting)
	assert.Empty(t, f.Brands[1].Campaigns)
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Brands)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("brands:\n  - name: x\n    budget: 1\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Brands, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplySkipsExisting(t *testing.T) {
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	svc := mocks.NewMockBudgetUseCase(t)
	svc.EXPECT().GetBrand(mock.Anything, "Test Brand").Return(domain.BrandSnapshot{Name: "Test Brand"}, nil)
	svc.EXPECT().GetBrand(mock.Anything, "Other").Return(domain.BrandSnapshot{}, domain.ErrBrandNotFound)
	svc.EXPECT().
		InitializeBrand(mock.Anything, mock.MatchedBy(func(d port.BrandDefinition) bool { return d.Name == "Other" })).
		Return("Other", nil).
		Once()

	created, err := Apply(context.Background(), svc, f, discard)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestApplyStopsOnInvalidBrand(t *testing.T) {
	f := File{Brands: []port.BrandDefinition{{Name: "bad", MonthlyBudget: -1}}}

	svc := mocks.NewMockBudgetUseCase(t)
	svc.EXPECT().GetBrand(mock.Anything, "bad").Return(domain.BrandSnapshot{}, domain.ErrBrandNotFound)
	svc.EXPECT().InitializeBrand(mock.Anything, mock.Anything).Return("", domain.ErrInvalidBudget)

	_, err := Apply(context.Background(), svc, f, discard)
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
}
