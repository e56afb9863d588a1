package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// ReportRepository implements port.ReportRepository on PostgreSQL.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) DailyTotals(ctx context.Context, filter port.ReportFilter) ([]port.DailyTotal, error) {
	var w where
	if filter.AccountID != nil {
		w.add("c.account_id = ?", *filter.AccountID)
	}
	if !filter.From.IsZero() {
		w.add("d.date >= ?", domain.Day(filter.From))
	}
	if !filter.To.IsZero() {
		w.add("d.date <= ?", domain.Day(filter.To))
	}
	rows, err := r.pool.Query(ctx, `SELECT d.date, c.platform, SUM(d.impressions)::bigint, SUM(d.clicks)::bigint,
SUM(d.spend)::text, SUM(d.reach)::bigint
FROM daily_metrics d JOIN campaigns c ON c.id = d.campaign_id`+w.String()+`
GROUP BY d.date, c.platform ORDER BY d.date, c.platform`, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DailyTotal, error) {
		var (
			t               port.DailyTotal
			platform, spend string
		)
		if err := row.Scan(&t.Date, &platform, &t.Impressions, &t.Clicks, &spend, &t.Reach); err != nil {
			return t, err
		}
		t.Date = domain.Day(t.Date)
		t.Platform = domain.Platform(platform)
		var err error
		t.Spend, err = parseDecimal(spend)
		return t, err
	})
}
