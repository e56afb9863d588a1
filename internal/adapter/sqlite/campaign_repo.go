package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

const campaignColumns = `id, account_id, name, platform, status, budget, impressions, clicks, spend, reach,
ctr, cpc, cpm, cpv, cpa, created_at, updated_at`

const dailyColumns = `id, campaign_id, date, impressions, clicks, spend, reach, created_at, updated_at`

type CampaignRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewCampaignRepo(db *sql.DB) *CampaignRepo {
	return &CampaignRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Reconcile runs the whole read-modify-write in one transaction. The database
// has a single connection, so transactions are serialised.
func (r *CampaignRepo) Reconcile(ctx context.Context, seed domain.Campaign, day time.Time, merge port.MergeFunc) (*domain.Campaign, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(r.now())
	date := domain.Day(day).Format(dateLayout)

	res, err := tx.ExecContext(ctx,
		`INSERT INTO campaigns (account_id, name, platform, status, budget, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?) ON CONFLICT (account_id, name, platform) DO NOTHING`,
		seed.AccountID, seed.Name, string(seed.Platform), seed.Status, seed.Budget.String(), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert campaign rows affected: %w", err)
	}

	c, err := scanCampaign(tx.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE account_id = ? AND name = ? AND platform = ?`,
		seed.AccountID, seed.Name, string(seed.Platform),
	))
	if err != nil {
		return nil, fmt.Errorf("select campaign: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO daily_metrics (campaign_id, date, created_at, updated_at) VALUES (?,?,?,?)
		ON CONFLICT (campaign_id, date) DO NOTHING`,
		c.ID, date, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert daily metric: %w", err)
	}
	d, err := scanDaily(tx.QueryRowContext(ctx,
		`SELECT `+dailyColumns+` FROM daily_metrics WHERE campaign_id = ? AND date = ?`, c.ID, date,
	))
	if err != nil {
		return nil, fmt.Errorf("select daily metric: %w", err)
	}

	merge(c, d, inserted == 1)
	c.Recompute()
	if c.UpdatedAt, err = parseTime(now); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE campaigns SET status = ?, budget = ?, impressions = ?, clicks = ?, spend = ?, reach = ?,
		ctr = ?, cpc = ?, cpm = ?, cpv = ?, cpa = ?, updated_at = ? WHERE id = ?`,
		c.Status, c.Budget.String(), c.Impressions, c.Clicks, c.Spend.String(), c.Reach,
		c.CTR, c.CPC, c.CPM, c.CPV, c.CPA, now, c.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE daily_metrics SET impressions = ?, clicks = ?, spend = ?, reach = ?, updated_at = ? WHERE id = ?`,
		d.Impressions, d.Clicks, d.Spend.String(), d.Reach, now, d.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update daily metric: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	return c, err
}

func (r *CampaignRepo) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		conds []string
		args  []any
	)
	if filter.AccountID != nil {
		conds = append(conds, "account_id = ?")
		args = append(args, *filter.AccountID)
	}
	if filter.Platform != "" {
		conds = append(conds, "platform = ?")
		args = append(args, string(filter.Platform))
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+campaignColumns+` FROM campaigns`+buildWhere(conds)+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) ListDaily(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error) {
	conds := []string{"campaign_id = ?"}
	args := []any{campaignID}
	if !from.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, domain.Day(from).Format(dateLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, domain.Day(to).Format(dateLayout))
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+dailyColumns+` FROM daily_metrics`+buildWhere(conds)+` ORDER BY date`, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily metrics: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyMetric
	for rows.Next() {
		d, err := scanDaily(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(s scanner) (*domain.Campaign, error) {
	var (
		c                    domain.Campaign
		platform             string
		budget, spend        string
		createdAt, updatedAt string
	)
	err := s.Scan(&c.ID, &c.AccountID, &c.Name, &platform, &c.Status, &budget, &c.Impressions, &c.Clicks,
		&spend, &c.Reach, &c.CTR, &c.CPC, &c.CPM, &c.CPV, &c.CPA, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.Platform = domain.Platform(platform)
	if c.Budget, err = parseDecimal(budget); err != nil {
		return nil, err
	}
	if c.Spend, err = parseDecimal(spend); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanDaily(s scanner) (*domain.DailyMetric, error) {
	var (
		d                    domain.DailyMetric
		date, spend          string
		createdAt, updatedAt string
	)
	err := s.Scan(&d.ID, &d.CampaignID, &date, &d.Impressions, &d.Clicks, &spend, &d.Reach, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if d.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, err
	}
	if d.Spend, err = parseDecimal(spend); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
