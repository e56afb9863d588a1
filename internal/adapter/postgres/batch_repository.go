package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

const batchColumns = `id, filename, file_path, submitted_by, source, profile, status, rows_processed,
rows_failed, error, created_at, started_at, completed_at`

// BatchRepository implements port.BatchRepository on PostgreSQL.
type BatchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

func (r *BatchRepository) Create(ctx context.Context, b *domain.ImportBatch) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO import_batches
(id, filename, file_path, submitted_by, source, profile, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now()) RETURNING created_at`,
		b.ID, b.Filename, b.FilePath, b.SubmittedBy, string(b.Source), b.Profile, string(b.Status)).
		Scan(&b.CreatedAt)
	if uniqueViolation(err) {
		return port.ErrConflict
	}
	return err
}

// Transition is a compare-and-set on the batch status.
func (r *BatchRepository) Transition(ctx context.Context, id string, from domain.BatchStatus, upd domain.BatchUpdate) error {
	started, completed := upd.Stamps()
	tag, err := r.pool.Exec(ctx, `UPDATE import_batches SET status = $3, rows_processed = $4, rows_failed = $5,
error = $6, started_at = COALESCE($7::timestamptz, started_at), completed_at = COALESCE($8::timestamptz, completed_at)
WHERE id = $1 AND status = $2`,
		id, string(from), string(upd.Status), upd.RowsProcessed, upd.RowsFailed, upd.Error, started, completed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM import_batches WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return fmt.Errorf("batch %s is no longer %s: %w", id, from, port.ErrConflict)
}

func (r *BatchRepository) Get(ctx context.Context, id string) (*domain.ImportBatch, error) {
	b, err := scanBatch(r.pool.QueryRow(ctx, `SELECT `+batchColumns+` FROM import_batches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	return b, err
}

func (r *BatchRepository) List(ctx context.Context, filter port.BatchFilter) ([]domain.ImportBatch, error) {
	var w where
	if filter.SubmittedBy != nil {
		w.add("submitted_by = ?", *filter.SubmittedBy)
	}
	if filter.Status != "" {
		w.add("status = ?", string(filter.Status))
	}
	query := `SELECT ` + batchColumns + ` FROM import_batches` + w.String() + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ImportBatch, error) {
		b, err := scanBatch(row)
		if err != nil {
			return domain.ImportBatch{}, err
		}
		return *b, nil
	})
}

func (r *BatchRepository) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM import_batches WHERE filename = $1)`, filename).Scan(&exists)
	return exists, err
}

func scanBatch(row pgx.Row) (*domain.ImportBatch, error) {
	var (
		b              domain.ImportBatch
		source, status string
	)
	err := row.Scan(&b.ID, &b.Filename, &b.FilePath, &b.SubmittedBy, &source, &b.Profile, &status,
		&b.RowsProcessed, &b.RowsFailed, &b.Error, &b.CreatedAt, &b.StartedAt, &b.CompletedAt)
	if err != nil {
		return nil, err
	}
	b.Source = domain.BatchSource(source)
	b.Status = domain.BatchStatus(status)
	return &b, nil
}
