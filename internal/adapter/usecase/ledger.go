package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// Ledger records the lifecycle of every import batch. It enforces the
// Pending -> Processing -> {Completed, Failed} state machine in front of the
// repository's compare-and-set transition.
type Ledger struct {
	repo  port.BatchRepository
	now   func() time.Time
	newID func() string
}

func NewLedger(repo port.BatchRepository) *Ledger {
	return &Ledger{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Submit creates a Pending batch.
func (l *Ledger) Submit(ctx context.Context, b domain.ImportBatch) (*domain.ImportBatch, error) {
	b.ID = l.newID()
	b.Status = domain.BatchPending
	b.RowsProcessed, b.RowsFailed, b.Error = 0, 0, ""
	b.CreatedAt = l.now()
	b.StartedAt, b.CompletedAt = nil, nil
	if err := l.repo.Create(ctx, &b); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	return &b, nil
}

// Start moves a Pending batch to Processing.
func (l *Ledger) Start(ctx context.Context, b *domain.ImportBatch) error {
	return l.transition(ctx, b, domain.BatchUpdate{Status: domain.BatchProcessing})
}

// Complete records the final counters of a processed batch.
func (l *Ledger) Complete(ctx context.Context, b *domain.ImportBatch, processed, failed int) error {
	return l.transition(ctx, b, domain.BatchUpdate{
		Status:        domain.BatchCompleted,
		RowsProcessed: processed,
		RowsFailed:    failed,
	})
}

// Fail records a batch-level error. It is valid from Pending and Processing.
func (l *Ledger) Fail(ctx context.Context, b *domain.ImportBatch, processed, failed int, msg string) error {
	return l.transition(ctx, b, domain.BatchUpdate{
		Status:        domain.BatchFailed,
		RowsProcessed: processed,
		RowsFailed:    failed,
		Error:         msg,
	})
}

func (l *Ledger) transition(ctx context.Context, b *domain.ImportBatch, upd domain.BatchUpdate) error {
	if !b.Status.CanTransition(upd.Status) {
		return fmt.Errorf("batch %s %s -> %s: %w", b.ID, b.Status, upd.Status, domain.ErrInvalidTransition)
	}
	upd.At = l.now()
	if err := l.repo.Transition(ctx, b.ID, b.Status, upd); err != nil {
		return fmt.Errorf("batch %s %s -> %s: %w", b.ID, b.Status, upd.Status, err)
	}
	b.Status = upd.Status
	b.RowsProcessed = upd.RowsProcessed
	b.RowsFailed = upd.RowsFailed
	b.Error = upd.Error
	started, completed := upd.Stamps()
	if started != nil {
		b.StartedAt = started
	}
	if completed != nil {
		b.CompletedAt = completed
	}
	return nil
}

// Get returns one batch.
func (l *Ledger) Get(ctx context.Context, id string) (*domain.ImportBatch, error) {
	return l.repo.Get(ctx, id)
}

// List returns batches newest first.
func (l *Ledger) List(ctx context.Context, filter port.BatchFilter) ([]domain.ImportBatch, error) {
	return l.repo.List(ctx, filter)
}

// Seen reports whether filename was ever submitted.
func (l *Ledger) Seen(ctx context.Context, filename string) (bool, error) {
	return l.repo.ExistsByFilename(ctx, filename)
}
