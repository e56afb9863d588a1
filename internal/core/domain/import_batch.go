package domain

import (
	"errors"
	"time"
)

// ErrInvalidTransition is returned when a batch is moved along an edge the
// lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid batch status transition")

// BatchStatus is the lifecycle state of an import batch.
type BatchStatus string

const (
	BatchPending    BatchStatus = "Pending"
	BatchProcessing BatchStatus = "Processing"
	BatchCompleted  BatchStatus = "Completed"
	BatchFailed     BatchStatus = "Failed"
)

// Terminal reports whether no further transitions are possible.
func (s BatchStatus) Terminal() bool {
	return s == BatchCompleted || s == BatchFailed
}

// Valid reports whether s is a known status.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchPending, BatchProcessing, BatchCompleted, BatchFailed:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
// Pending -> Processing -> {Completed, Failed}; a batch that fails before it
// starts processing may go straight from Pending to Failed.
func (s BatchStatus) CanTransition(next BatchStatus) bool {
	switch s {
	case BatchPending:
		return next == BatchProcessing || next == BatchFailed
	case BatchProcessing:
		return next == BatchCompleted || next == BatchFailed
	}
	return false
}

// BatchSource tells which ingestion path submitted a batch.
type BatchSource string

const (
	SourceUpload    BatchSource = "upload"
	SourceScheduler BatchSource = "scheduler"
	SourceCLI       BatchSource = "cli"
)

// ImportBatch is the ledger record of one submitted file.
type ImportBatch struct {
	ID            string
	Filename      string
	FilePath      string
	SubmittedBy   *int64
	Source        BatchSource
	Profile       string
	Status        BatchStatus
	RowsProcessed int
	RowsFailed    int
	Error         string
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// BatchUpdate carries the fields written together with a status transition.
type BatchUpdate struct {
	Status        BatchStatus
	RowsProcessed int
	RowsFailed    int
	Error         string
	At            time.Time
}

// Stamps returns the started and completed timestamps written by u. A nil
// value leaves the stored timestamp untouched.
func (u BatchUpdate) Stamps() (started, completed *time.Time) {
	at := u.At
	if u.Status == BatchProcessing {
		started = &at
	}
	if u.Status.Terminal() {
		completed = &at
	}
	return started, completed
}
