package port

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
)

// ImportUseCase is the primary port into the reconciliation engine. Every
// call records a ledger batch; row failures are reported on the result and
// never returned as an error. An error is returned only for requests refused
// up front (ErrInvalidRequest) or when the ledger itself cannot be written.
type ImportUseCase interface {
	// Import processes one in-memory file.
	Import(ctx context.Context, req ImportRequest) (*BatchResult, error)
	// ImportFile processes the file at path and moves it into a processed/
	// or errors/ directory next to it, named with a timestamp prefix.
	ImportFile(ctx context.Context, path string, opts ingest.Options, source domain.BatchSource) (*BatchResult, error)
	// Seen reports whether filename already has a ledger record.
	Seen(ctx context.Context, filename string) (bool, error)
	// GetBatch returns one ledger record.
	GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error)
	// ListBatches returns ledger records newest first.
	ListBatches(ctx context.Context, filter BatchFilter) ([]domain.ImportBatch, error)
}

// ImportRequest describes one file submitted for reconciliation.
type ImportRequest struct {
	Filename string
	FilePath string
	Data     []byte
	// Submitter is the authenticated caller, if any. It owns every row when
	// the owner account policy is selected.
	Submitter *domain.Account
	Source    domain.BatchSource
	Options   ingest.Options
}

// BatchResult summarises one processed batch.
type BatchResult struct {
	BatchID         string          `json:"batch_id"`
	Success         bool            `json:"success"`
	RowsProcessed   int             `json:"rows_processed"`
	RowsFailed      int             `json:"rows_failed"`
	AccountsTouched int             `json:"accounts_touched"`
	Platform        domain.Platform `json:"platform"`
	Error           string          `json:"error,omitempty"`
	// RowErrors holds the first rejected rows, bounded by
	// ingest.Options.MaxRowErrors.
	RowErrors []*RowError `json:"row_errors,omitempty"`
}

// RowError is the structured reason a single row was rejected.
type RowError struct {
	Line     int       `json:"line"`
	Account  string    `json:"account,omitempty"`
	Campaign string    `json:"campaign,omitempty"`
	Date     time.Time `json:"date,omitzero"`
	Cause    error     `json:"-"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d (account %q, campaign %q): %v", e.Line, e.Account, e.Campaign, e.Cause)
}

func (e *RowError) Unwrap() error { return e.Cause }

// MarshalJSON adds the cause as a "reason" string.
func (e *RowError) MarshalJSON() ([]byte, error) {
	type plain RowError
	var reason string
	if e.Cause != nil {
		reason = e.Cause.Error()
	}
	return json.Marshal(struct {
		plain
		Reason string `json:"reason"`
	}{plain(*e), reason})
}

// ReportUseCase exposes read models over reconciled data.
type ReportUseCase interface {
	// Summary rolls daily records up per day, per platform and in total.
	Summary(ctx context.Context, filter ReportFilter) (*Report, error)
	// Campaigns lists campaigns with their lifetime counters.
	Campaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// Daily returns the daily series of one campaign.
	Daily(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error)
}

// Metrics pairs summed counters with the ratios derived from them.
type Metrics struct {
	domain.Counters
	domain.Derived
}

// NewMetrics derives the ratios of c.
func NewMetrics(c domain.Counters) Metrics {
	return Metrics{Counters: c, Derived: c.Derive()}
}

type DayReport struct {
	Date time.Time
	Metrics
}

type PlatformReport struct {
	Platform domain.Platform
	Metrics
}

// Report is the account-level roll-up over a date range.
type Report struct {
	From      time.Time
	To        time.Time
	Days      []DayReport
	Platforms []PlatformReport
	Total     Metrics
}

// SchedulerController is the lifecycle surface of the directory scheduler.
type SchedulerController interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status() SchedulerStatus
	// Trigger runs a scan now. Concurrent triggers share one scan.
	Trigger(ctx context.Context) (*ScanReport, error)
}

// SchedulerStatus is a point-in-time view of the scheduler.
type SchedulerStatus struct {
	Running    bool          `json:"running"`
	Dir        string        `json:"dir"`
	Interval   time.Duration `json:"interval"`
	LastRun    *time.Time    `json:"last_run,omitempty"`
	NextRun    *time.Time    `json:"next_run,omitempty"`
	LastReport *ScanReport   `json:"last_report,omitempty"`
}

// ScanReport describes one pass over the watched directory.
type ScanReport struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Processed  int           `json:"processed"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Files      []FileOutcome `json:"files"`
}

// FileOutcome is the fate of one file during a scan.
type FileOutcome struct {
	Filename string       `json:"filename"`
	Skipped  bool         `json:"skipped,omitempty"`
	Result   *BatchResult `json:"result,omitempty"`
	Error    string       `json:"error,omitempty"`
}
