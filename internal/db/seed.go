package db

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "demo-password"

// DemoEmails are the accounts created by Seed. Their addresses match the
// client_email column of the sample agency exports.
var DemoEmails = []string{
	"acme@example.com",
	"globex@example.com",
	"initech@example.com",
}

// Seed creates the demo accounts when the store holds no accounts yet. It
// returns the number of accounts created.
func Seed(ctx context.Context, accounts port.AccountRepository) (int, error) {
	n, err := accounts.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	created := 0
	for _, email := range DemoEmails {
		acc := &domain.Account{
			Email:        email,
			Username:     domain.UsernameFromEmail(email),
			PasswordHash: string(hash),
		}
		err := accounts.Create(ctx, acc)
		if errors.Is(err, port.ErrConflict) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", email, err)
		}
		created++
	}
	return created, nil
}
