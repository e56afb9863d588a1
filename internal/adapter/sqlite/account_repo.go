package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var (
		a       domain.Account
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, username, password_hash, placeholder, created_at FROM accounts WHERE email = ?`,
		domain.NormalizeEmail(email),
	).Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.Placeholder, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if a.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(ctx context.Context, acc *domain.Account) error {
	acc.Email = domain.NormalizeEmail(acc.Email)
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, username, password_hash, placeholder, created_at) VALUES (?,?,?,?,?)`,
		acc.Email, acc.Username, acc.PasswordHash, acc.Placeholder, formatTime(acc.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return port.ErrConflict
		}
		return fmt.Errorf("insert account: %w", err)
	}
	acc.ID, err = res.LastInsertId()
	return err
}

func (r *AccountRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n)
	return n, err
}
