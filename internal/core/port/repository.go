package port

import (
	"context"
	"errors"
	"time"

	"ads-reconciler/internal/core/domain"
)

var (
	// ErrNotFound is returned by repositories when the requested record does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write loses a race: a duplicate identity
	// or a batch no longer in the expected status.
	ErrConflict = errors.New("conflict")
	// ErrInvalidRequest is returned by use cases for input they refuse before
	// doing any work.
	ErrInvalidRequest = errors.New("invalid request")
)

// AccountRepository stores tenants. It is an outbound port; the engine only
// reads accounts unless a provisioning policy is selected.
type AccountRepository interface {
	// FindByEmail returns the account with the normalised email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create inserts acc and sets its ID. A duplicate email yields ErrConflict.
	Create(ctx context.Context, acc *domain.Account) error
	// Count returns the number of stored accounts.
	Count(ctx context.Context) (int64, error)
}

// MergeFunc applies one decoded row to a campaign and its daily record while
// the repository holds both exclusively. created reports whether the campaign
// was created for this row.
type MergeFunc func(c *domain.Campaign, d *domain.DailyMetric, created bool)

// CampaignRepository persists campaigns and their daily slices.
// Implementations must serialise concurrent Reconcile calls for the same
// campaign identity so accumulated counters never lose an update.
type CampaignRepository interface {
	// Reconcile resolves the campaign identified by seed.Key(), creating it
	// from seed when absent, resolves or creates its daily record for day,
	// runs merge and persists both. Derived metrics are recomputed before the
	// write. The stored campaign is returned.
	Reconcile(ctx context.Context, seed domain.Campaign, day time.Time, merge MergeFunc) (*domain.Campaign, error)
	// Get returns a campaign by id or ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// List returns campaigns matching filter ordered by id.
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// ListDaily returns the daily records of a campaign within [from, to],
	// oldest first. Zero bounds are open.
	ListDaily(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error)
}

// CampaignFilter narrows List. Zero values match everything.
type CampaignFilter struct {
	AccountID *int64
	Platform  domain.Platform
	Status    string
}

// BatchRepository persists the import ledger.
type BatchRepository interface {
	// Create inserts a new batch.
	Create(ctx context.Context, b *domain.ImportBatch) error
	// Transition moves batch id from status from to upd.Status, writing the
	// counters and error text of upd. It returns ErrConflict when the stored
	// status is not from and ErrNotFound for an unknown id.
	Transition(ctx context.Context, id string, from domain.BatchStatus, upd domain.BatchUpdate) error
	// Get returns a batch by id or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.ImportBatch, error)
	// List returns batches matching filter, newest first.
	List(ctx context.Context, filter BatchFilter) ([]domain.ImportBatch, error)
	// ExistsByFilename reports whether any batch was recorded for filename.
	ExistsByFilename(ctx context.Context, filename string) (bool, error)
}

// BatchFilter narrows BatchRepository.List. Zero values match everything;
// a non-positive Limit means no limit.
type BatchFilter struct {
	SubmittedBy *int64
	Status      domain.BatchStatus
	Limit       int
}

// ReportRepository aggregates daily records for reporting.
type ReportRepository interface {
	// DailyTotals sums daily records per (date, platform) for the campaigns
	// of the filtered account within [From, To], ordered by date then platform.
	DailyTotals(ctx context.Context, filter ReportFilter) ([]DailyTotal, error)
}

// ReportFilter narrows DailyTotals. A nil AccountID covers every account.
type ReportFilter struct {
	AccountID *int64
	From      time.Time
	To        time.Time
}

// DailyTotal is one (date, platform) bucket of summed counters.
type DailyTotal struct {
	Date     time.Time
	Platform domain.Platform
	domain.Counters
}

// Repositories bundles the repositories one storage backend provides.
type Repositories struct {
	Accounts  AccountRepository
	Campaigns CampaignRepository
	Batches   BatchRepository
	Reports   ReportRepository
}
