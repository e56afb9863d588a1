package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// DailyTotals groups in Go rather than SQL: spend is stored as text and
// SQLite would sum it as a float.
func (r *ReportRepo) DailyTotals(ctx context.Context, filter port.ReportFilter) ([]port.DailyTotal, error) {
	var (
		conds []string
		args  []any
	)
	if filter.AccountID != nil {
		conds = append(conds, "c.account_id = ?")
		args = append(args, *filter.AccountID)
	}
	if !filter.From.IsZero() {
		conds = append(conds, "d.date >= ?")
		args = append(args, domain.Day(filter.From).Format(dateLayout))
	}
	if !filter.To.IsZero() {
		conds = append(conds, "d.date <= ?")
		args = append(args, domain.Day(filter.To).Format(dateLayout))
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.date, c.platform, d.impressions, d.clicks, d.spend, d.reach
		FROM daily_metrics d JOIN campaigns c ON c.id = d.campaign_id`+buildWhere(conds)+`
		ORDER BY d.date, c.platform`, args...)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var out []port.DailyTotal
	for rows.Next() {
		var (
			date, platform, spend string
			c                     domain.Counters
		)
		if err := rows.Scan(&date, &platform, &c.Impressions, &c.Clicks, &spend, &c.Reach); err != nil {
			return nil, err
		}
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, err
		}
		if c.Spend, err = parseDecimal(spend); err != nil {
			return nil, err
		}
		p := domain.Platform(platform)
		if n := len(out); n > 0 && out[n-1].Date.Equal(day) && out[n-1].Platform == p {
			out[n-1].Counters = out[n-1].Counters.Add(c)
			continue
		}
		out = append(out, port.DailyTotal{Date: day, Platform: p, Counters: c})
	}
	return out, rows.Err()
}
