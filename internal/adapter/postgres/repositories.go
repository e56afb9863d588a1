package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ads-reconciler/internal/core/port"
)

// DefaultMaxRetries bounds how often a transaction that lost a serialization
// race is replayed.
const DefaultMaxRetries = 5

// NewRepositories wires every repository port onto one pool.
func NewRepositories(pool *pgxpool.Pool, maxRetries int) port.Repositories {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return port.Repositories{
		Accounts:  NewAccountRepository(pool),
		Campaigns: NewCampaignRepository(pool, maxRetries),
		Batches:   NewBatchRepository(pool),
		Reports:   NewReportRepository(pool),
	}
}

// retryable reports whether err is a serialization failure or a deadlock.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or the
// attempt budget is spent. Backoff grows linearly from 10ms.
func withRetry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil || !retryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 10 * time.Millisecond):
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", attempts, err)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
