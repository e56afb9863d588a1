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

const batchColumns = `id, filename, file_path, submitted_by, source, profile, status, rows_processed,
rows_failed, error, created_at, started_at, completed_at`

type BatchRepo struct {
	db *sql.DB
}

func NewBatchRepo(db *sql.DB) *BatchRepo {
	return &BatchRepo{db: db}
}

func (r *BatchRepo) Create(ctx context.Context, b *domain.ImportBatch) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO import_batches (id, filename, file_path, submitted_by, source, profile, status, created_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		b.ID, b.Filename, b.FilePath, b.SubmittedBy, string(b.Source), b.Profile, string(b.Status), formatTime(b.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return port.ErrConflict
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func (r *BatchRepo) Transition(ctx context.Context, id string, from domain.BatchStatus, upd domain.BatchUpdate) error {
	started, completed := upd.Stamps()
	res, err := r.db.ExecContext(ctx,
		`UPDATE import_batches SET status = ?, rows_processed = ?, rows_failed = ?, error = ?,
		started_at = COALESCE(?, started_at), completed_at = COALESCE(?, completed_at)
		WHERE id = ? AND status = ?`,
		string(upd.Status), upd.RowsProcessed, upd.RowsFailed, upd.Error,
		formatNullableTime(started), formatNullableTime(completed), id, string(from),
	)
	if err != nil {
		return fmt.Errorf("transition batch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition batch rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM import_batches WHERE id = ?)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return fmt.Errorf("batch %s is no longer %s: %w", id, from, port.ErrConflict)
}

func (r *BatchRepo) Get(ctx context.Context, id string) (*domain.ImportBatch, error) {
	b, err := scanBatch(r.db.QueryRowContext(ctx, `SELECT `+batchColumns+` FROM import_batches WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	return b, err
}

func (r *BatchRepo) List(ctx context.Context, filter port.BatchFilter) ([]domain.ImportBatch, error) {
	var (
		conds []string
		args  []any
	)
	if filter.SubmittedBy != nil {
		conds = append(conds, "submitted_by = ?")
		args = append(args, *filter.SubmittedBy)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	query := `SELECT ` + batchColumns + ` FROM import_batches` + buildWhere(conds) + ` ORDER BY created_at DESC, rowid DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []domain.ImportBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *BatchRepo) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM import_batches WHERE filename = ?)`, filename).Scan(&exists)
	return exists, err
}

func scanBatch(s scanner) (*domain.ImportBatch, error) {
	var (
		b                      domain.ImportBatch
		submittedBy            sql.NullInt64
		source, status         string
		createdAt              string
		startedAt, completedAt sql.NullString
	)
	err := s.Scan(&b.ID, &b.Filename, &b.FilePath, &submittedBy, &source, &b.Profile, &status,
		&b.RowsProcessed, &b.RowsFailed, &b.Error, &createdAt, &startedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	if submittedBy.Valid {
		id := submittedBy.Int64
		b.SubmittedBy = &id
	}
	b.Source = domain.BatchSource(source)
	b.Status = domain.BatchStatus(status)
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if b.StartedAt, err = parseNullableTime(startedAt); err != nil {
		return nil, err
	}
	if b.CompletedAt, err = parseNullableTime(completedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
