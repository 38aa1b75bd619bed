package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adbudget/internal/core/domain"
)

// BrandRepository implements port.BrandRepository using pgxpool for
// PostgreSQL. Each save replaces the brand row and all of its campaign rows
// in one transaction.
type BrandRepository struct {
	pool *pgxpool.Pool
}

// NewBrandRepository returns a new repository instance.
func NewBrandRepository(pool *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{pool: pool}
}

// SaveBrand upserts the brand and rewrites its campaigns in order.
func (r *BrandRepository) SaveBrand(ctx context.Context, s domain.BrandSnapshot) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO brands
    (name, monthly_budget, daily_budget, current_daily_spend, current_monthly_spend, updated_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (name) DO UPDATE SET
    monthly_budget = EXCLUDED.monthly_budget,
    daily_budget = EXCLUDED.daily_budget,
    current_daily_spend = EXCLUDED.current_daily_spend,
    current_monthly_spend = EXCLUDED.current_monthly_spend,
    updated_at = now()`,
		s.Name, s.MonthlyBudget, s.DailyBudget, s.CurrentDailySpend, s.CurrentMonthlySpend)
	if err != nil {
		return fmt.Errorf("upsert brand %q: %w", s.Name, err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE brand_name = $1`, s.Name); err != nil {
		return fmt.Errorf("clear campaigns of %q: %w", s.Name, err)
	}
	if len(s.Campaigns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, c := range s.Campaigns {
		var windows []byte
		windows, err = encodeDayparting(c.Dayparting)
		if err != nil {
			return err
		}
		batch.Queue(`INSERT INTO campaigns (brand_name, position, name, is_active, dayparting)
VALUES ($1,$2,$3,$4,$5)`, s.Name, i, c.Name, c.Active, windows)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert campaigns of %q: %w", s.Name, err)
	}
	return nil
}

// LoadBrands returns every stored brand ordered by name, with campaigns in
// their saved order.
func (r *BrandRepository) LoadBrands(ctx context.Context) ([]domain.BrandSnapshot, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, monthly_budget, daily_budget, current_daily_spend, current_monthly_spend
FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BrandSnapshot, error) {
		var s domain.BrandSnapshot
		err := row.Scan(&s.Name, &s.MonthlyBudget, &s.DailyBudget, &s.CurrentDailySpend, &s.CurrentMonthlySpend)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan brands: %w", err)
	}

	rows, err = r.pool.Query(ctx, `SELECT brand_name, name, is_active, dayparting
FROM campaigns ORDER BY brand_name, position`)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (campaignRow, error) {
		var (
			cr  campaignRow
			raw []byte
		)
		if err := row.Scan(&cr.brand, &cr.campaign.Name, &cr.campaign.Active, &raw); err != nil {
			return cr, err
		}
		windows, err := decodeDayparting(raw)
		if err != nil {
			return cr, fmt.Errorf("campaign %q of %q: %w", cr.campaign.Name, cr.brand, err)
		}
		cr.campaign.Dayparting = windows
		return cr, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}

	return attachCampaigns(brands, campaigns), nil
}

type campaignRow struct {
	brand    string
	campaign domain.CampaignSnapshot
}

// attachCampaigns appends each campaign to its brand. Campaigns of brands
// that are not present are dropped.
func attachCampaigns(brands []domain.BrandSnapshot, campaigns []campaignRow) []domain.BrandSnapshot {
	index := make(map[string]int, len(brands))
	for i := range brands {
		index[brands[i].Name] = i
	}
	for _, c := range campaigns {
		if i, ok := index[c.brand]; ok {
			brands[i].Campaigns = append(brands[i].Campaigns, c.campaign)
		}
	}
	return brands
}

func encodeDayparting(windows []domain.HourRange) ([]byte, error) {
	b, err := json.Marshal(windows)
	if err != nil {
		return nil, fmt.Errorf("encode dayparting: %w", err)
	}
	return b, nil
}

func decodeDayparting(raw []byte) ([]domain.HourRange, error) {
	var windows []domain.HourRange
	if err := json.Unmarshal(raw, &windows); err != nil {
		return nil, fmt.Errorf("decode dayparting: %w", err)
	}
	return windows, nil
}
