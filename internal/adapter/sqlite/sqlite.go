// Package sqlite implements the repository ports on an embedded SQLite
// database. Money is stored as decimal text and timestamps as fixed-width
// UTC text so that lexical order matches time order.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ads-reconciler/internal/core/port"
)

const (
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	dateLayout = "2006-01-02"
)

// NewRepositories wires every repository port onto db. The database is
// expected to come from db.OpenSQLite.
func NewRepositories(db *sql.DB) port.Repositories {
	return port.Repositories{
		Accounts:  NewAccountRepo(db),
		Campaigns: NewCampaignRepo(db),
		Batches:   NewBatchRepo(db),
		Reports:   NewReportRepo(db),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func parseNullableTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

func buildWhere(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
