package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

const campaignColumns = `id, account_id, name, platform, status, budget::text, impressions, clicks,
spend::text, reach, ctr, cpc, cpm, cpv, cpa, created_at, updated_at`

const dailyColumns = `id, campaign_id, date, impressions, clicks, spend::text, reach, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository on PostgreSQL. Each
// Reconcile call is one transaction that locks the campaign row and the daily
// row with SELECT ... FOR UPDATE before mutating them.
type CampaignRepository struct {
	pool       *pgxpool.Pool
	maxRetries int
}

func NewCampaignRepository(pool *pgxpool.Pool, maxRetries int) *CampaignRepository {
	return &CampaignRepository{pool: pool, maxRetries: maxRetries}
}

// Reconcile resolves or creates the campaign and its daily record and applies
// merge under row locks. Serialization failures and deadlocks are retried.
func (r *CampaignRepository) Reconcile(ctx context.Context, seed domain.Campaign, day time.Time, merge port.MergeFunc) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := withRetry(ctx, r.maxRetries, func() error {
		c, err := r.reconcile(ctx, seed, domain.Day(day), merge)
		out = c
		return err
	})
	return out, err
}

func (r *CampaignRepository) reconcile(ctx context.Context, seed domain.Campaign, day time.Time, merge port.MergeFunc) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	created := true
	var insertedID int64
	err = tx.QueryRow(ctx, `INSERT INTO campaigns (account_id, name, platform, status, budget, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::numeric, now(), now())
ON CONFLICT (account_id, name, platform) DO NOTHING RETURNING id`,
		seed.AccountID, seed.Name, string(seed.Platform), seed.Status, seed.Budget.String()).Scan(&insertedID)
	if errors.Is(err, pgx.ErrNoRows) {
		created = false
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}

	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE account_id = $1 AND name = $2 AND platform = $3 FOR UPDATE`,
		seed.AccountID, seed.Name, string(seed.Platform)))
	if err != nil {
		return nil, fmt.Errorf("lock campaign: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO daily_metrics (campaign_id, date, created_at, updated_at)
VALUES ($1, $2, now(), now()) ON CONFLICT (campaign_id, date) DO NOTHING`, c.ID, day)
	if err != nil {
		return nil, fmt.Errorf("insert daily metric: %w", err)
	}
	d, err := scanDaily(tx.QueryRow(ctx, `SELECT `+dailyColumns+` FROM daily_metrics
WHERE campaign_id = $1 AND date = $2 FOR UPDATE`, c.ID, day))
	if err != nil {
		return nil, fmt.Errorf("lock daily metric: %w", err)
	}

	merge(c, d, created)
	c.Recompute()

	err = tx.QueryRow(ctx, `UPDATE campaigns SET status = $2, budget = $3::numeric, impressions = $4, clicks = $5,
spend = $6::numeric, reach = $7, ctr = $8, cpc = $9, cpm = $10, cpv = $11, cpa = $12, updated_at = now()
WHERE id = $1 RETURNING updated_at`,
		c.ID, c.Status, c.Budget.String(), c.Impressions, c.Clicks, c.Spend.String(), c.Reach,
		c.CTR, c.CPC, c.CPM, c.CPV, c.CPA).Scan(&c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	_, err = tx.Exec(ctx, `UPDATE daily_metrics SET impressions = $2, clicks = $3, spend = $4::numeric, reach = $5,
updated_at = now() WHERE id = $1`,
		d.ID, d.Impressions, d.Clicks, d.Spend.String(), d.Reach)
	if err != nil {
		return nil, fmt.Errorf("update daily metric: %w", err)
	}
	return c, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	return c, err
}

// List returns campaigns matching filter ordered by id.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var w where
	if filter.AccountID != nil {
		w.add("account_id = ?", *filter.AccountID)
	}
	if filter.Platform != "" {
		w.add("platform = ?", string(filter.Platform))
	}
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListDaily returns the daily records of one campaign, oldest first.
func (r *CampaignRepository) ListDaily(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error) {
	var w where
	w.add("campaign_id = ?", campaignID)
	if !from.IsZero() {
		w.add("date >= ?", domain.Day(from))
	}
	if !to.IsZero() {
		w.add("date <= ?", domain.Day(to))
	}
	rows, err := r.pool.Query(ctx, `SELECT `+dailyColumns+` FROM daily_metrics`+w.String()+` ORDER BY date`, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyMetric, error) {
		d, err := scanDaily(row)
		if err != nil {
			return domain.DailyMetric{}, err
		}
		return *d, nil
	})
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c             domain.Campaign
		platform      string
		budget, spend string
	)
	err := row.Scan(&c.ID, &c.AccountID, &c.Name, &platform, &c.Status, &budget, &c.Impressions, &c.Clicks,
		&spend, &c.Reach, &c.CTR, &c.CPC, &c.CPM, &c.CPV, &c.CPA, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Platform = domain.Platform(platform)
	if c.Budget, err = parseDecimal(budget); err != nil {
		return nil, fmt.Errorf("campaign %d budget: %w", c.ID, err)
	}
	if c.Spend, err = parseDecimal(spend); err != nil {
		return nil, fmt.Errorf("campaign %d spend: %w", c.ID, err)
	}
	return &c, nil
}

func scanDaily(row pgx.Row) (*domain.DailyMetric, error) {
	var (
		d     domain.DailyMetric
		spend string
	)
	err := row.Scan(&d.ID, &d.CampaignID, &d.Date, &d.Impressions, &d.Clicks, &spend, &d.Reach, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Date = domain.Day(d.Date)
	if d.Spend, err = parseDecimal(spend); err != nil {
		return nil, fmt.Errorf("daily metric %d spend: %w", d.ID, err)
	}
	return &d, nil
}
