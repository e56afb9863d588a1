package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
	"ads-reconciler/internal/core/port/mocks"
)

func newTestLedger(repo port.BatchRepository) *Ledger {
	l := NewLedger(repo)
	l.now = func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) }
	l.newID = func() string { return "batch-1" }
	return l
}

func TestLedgerSubmitCreatesPendingBatch(t *testing.T) {
	repo := mocks.NewMockBatchRepository(t)
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(b *domain.ImportBatch) bool {
			return b.ID == "batch-1" && b.Status == domain.BatchPending && b.Filename == "june.csv" && !b.CreatedAt.IsZero()
		})).
		Return(nil)

	l := newTestLedger(repo)
	b, err := l.Submit(context.Background(), domain.ImportBatch{
		Filename: "june.csv",
		Status:   domain.BatchCompleted,
		Source:   domain.SourceUpload,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BatchPending, b.Status, "callers cannot pre-set a status")
	assert.Equal(t, "batch-1", b.ID)
}

func TestLedgerLifecycle(t *testing.T) {
	repo := mocks.NewMockBatchRepository(t)
	repo.EXPECT().
		Transition(mock.Anything, "batch-1", domain.BatchPending, mock.MatchedBy(func(u domain.BatchUpdate) bool {
			return u.Status == domain.BatchProcessing
		})).
		Return(nil).
		Once()
	repo.EXPECT().
		Transition(mock.Anything, "batch-1", domain.BatchProcessing, mock.MatchedBy(func(u domain.BatchUpdate) bool {
			return u.Status == domain.BatchCompleted && u.RowsProcessed == 9 && u.RowsFailed == 1
		})).
		Return(nil).
		Once()

	l := newTestLedger(repo)
	b := &domain.ImportBatch{ID: "batch-1", Status: domain.BatchPending}

	require.NoError(t, l.Start(context.Background(), b))
	assert.Equal(t, domain.BatchProcessing, b.Status)
	require.NotNil(t, b.StartedAt)
	assert.Nil(t, b.CompletedAt)

	require.NoError(t, l.Complete(context.Background(), b, 9, 1))
	assert.Equal(t, domain.BatchCompleted, b.Status)
	assert.Equal(t, 9, b.RowsProcessed)
	require.NotNil(t, b.CompletedAt)

	// Terminal states are never left; the repository is not consulted.
	err := l.Fail(context.Background(), b, 9, 1, "late failure")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	err = l.Start(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.BatchCompleted, b.Status)
}

func TestLedgerFailFromPending(t *testing.T) {
	repo := mocks.NewMockBatchRepository(t)
	repo.EXPECT().
		Transition(mock.Anything, "batch-1", domain.BatchPending, mock.MatchedBy(func(u domain.BatchUpdate) bool {
			return u.Status == domain.BatchFailed && u.Error == "unreadable input"
		})).
		Return(nil)

	l := newTestLedger(repo)
	b := &domain.ImportBatch{ID: "batch-1", Status: domain.BatchPending}
	require.NoError(t, l.Fail(context.Background(), b, 0, 0, "unreadable input"))
	assert.Equal(t, domain.BatchFailed, b.Status)
	assert.Equal(t, "unreadable input", b.Error)
}

func TestLedgerLostRaceKeepsLocalState(t *testing.T) {
	repo := mocks.NewMockBatchRepository(t)
	repo.EXPECT().
		Transition(mock.Anything, "batch-1", domain.BatchPending, mock.Anything).
		Return(port.ErrConflict)

	l := newTestLedger(repo)
	b := &domain.ImportBatch{ID: "batch-1", Status: domain.BatchPending}
	err := l.Start(context.Background(), b)
	assert.ErrorIs(t, err, port.ErrConflict)
	assert.Equal(t, domain.BatchPending, b.Status)
	assert.Nil(t, b.StartedAt)
}

func TestLedgerQueries(t *testing.T) {
	repo := mocks.NewMockBatchRepository(t)
	submitter := int64(3)
	filter := port.BatchFilter{SubmittedBy: &submitter, Status: domain.BatchFailed, Limit: 10}
	repo.EXPECT().List(mock.Anything, filter).Return([]domain.ImportBatch{{ID: "b2"}, {ID: "b1"}}, nil)
	repo.EXPECT().ExistsByFilename(mock.Anything, "june.csv").Return(true, nil)
	repo.EXPECT().Get(mock.Anything, "nope").Return(nil, port.ErrNotFound)

	l := newTestLedger(repo)
	list, err := l.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	seen, err := l.Seen(context.Background(), "june.csv")
	require.NoError(t, err)
	assert.True(t, seen)

	_, err = l.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrNotFound)
}
