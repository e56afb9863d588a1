package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// AccountRepository implements port.AccountRepository on PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, username, password_hash, placeholder, created_at FROM accounts WHERE email = $1`,
		domain.NormalizeEmail(email)).
		Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.Placeholder, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account) error {
	acc.Email = domain.NormalizeEmail(acc.Email)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO accounts (email, username, password_hash, placeholder, created_at)
VALUES ($1, $2, $3, $4, now()) RETURNING id, created_at`,
		acc.Email, acc.Username, acc.PasswordHash, acc.Placeholder).
		Scan(&acc.ID, &acc.CreatedAt)
	if uniqueViolation(err) {
		return port.ErrConflict
	}
	return err
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&n)
	return n, err
}
