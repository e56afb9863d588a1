// Package memory is an in-process storage backend. It is used for tests and
// for running the service without a database.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

type dailyKey struct {
	campaignID int64
	date       time.Time
}

// Store keeps every record in maps guarded by a single RWMutex. Campaign
// reconciliation additionally holds a per-identity lock so that two batches
// touching the same campaign never interleave their read-modify-write.
type Store struct {
	mu sync.RWMutex

	accounts       map[int64]domain.Account
	accountByEmail map[string]int64
	nextAccountID  int64

	campaigns      map[int64]domain.Campaign
	campaignByKey  map[domain.CampaignKey]int64
	nextCampaignID int64

	daily       map[dailyKey]domain.DailyMetric
	nextDailyID int64

	batches   map[string]domain.ImportBatch
	batchSeq  map[string]int64
	nextBatch int64

	locksMu sync.Mutex
	locks   map[domain.CampaignKey]*sync.Mutex

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts:       make(map[int64]domain.Account),
		accountByEmail: make(map[string]int64),
		campaigns:      make(map[int64]domain.Campaign),
		campaignByKey:  make(map[domain.CampaignKey]int64),
		daily:          make(map[dailyKey]domain.DailyMetric),
		batches:        make(map[string]domain.ImportBatch),
		batchSeq:       make(map[string]int64),
		locks:          make(map[domain.CampaignKey]*sync.Mutex),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Repositories exposes the store through the repository ports.
func (s *Store) Repositories() port.Repositories {
	return port.Repositories{
		Accounts:  accountRepo{s},
		Campaigns: campaignRepo{s},
		Batches:   batchRepo{s},
		Reports:   reportRepo{s},
	}
}

type accountRepo struct{ s *Store }

func (r accountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.accountByEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, port.ErrNotFound
	}
	acc := r.s.accounts[id]
	return &acc, nil
}

func (r accountRepo) Create(_ context.Context, acc *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acc.Email = domain.NormalizeEmail(acc.Email)
	if _, ok := r.s.accountByEmail[acc.Email]; ok {
		return port.ErrConflict
	}
	r.s.nextAccountID++
	acc.ID = r.s.nextAccountID
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = r.s.now()
	}
	r.s.accounts[acc.ID] = *acc
	r.s.accountByEmail[acc.Email] = acc.ID
	return nil
}

func (r accountRepo) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.accounts)), nil
}

type campaignRepo struct{ s *Store }

func (s *Store) identityLock(key domain.CampaignKey) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (r campaignRepo) Reconcile(ctx context.Context, seed domain.Campaign, day time.Time, merge port.MergeFunc) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := seed.Key()
	l := r.s.identityLock(key)
	l.Lock()
	defer l.Unlock()

	now := r.s.now()
	day = domain.Day(day)

	r.s.mu.RLock()
	var c domain.Campaign
	id, exists := r.s.campaignByKey[key]
	if exists {
		c = r.s.campaigns[id]
	}
	r.s.mu.RUnlock()

	if !exists {
		c = domain.Campaign{
			AccountID: seed.AccountID,
			Name:      seed.Name,
			Platform:  seed.Platform,
			Status:    seed.Status,
			Budget:    seed.Budget,
			CreatedAt: now,
		}
	}

	var d domain.DailyMetric
	if exists {
		r.s.mu.RLock()
		d = r.s.daily[dailyKey{campaignID: c.ID, date: day}]
		r.s.mu.RUnlock()
	}
	if d.ID == 0 {
		d = domain.DailyMetric{Date: day, CreatedAt: now}
	}

	merge(&c, &d, !exists)
	c.Recompute()
	c.UpdatedAt = now
	d.UpdatedAt = now

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !exists {
		r.s.nextCampaignID++
		c.ID = r.s.nextCampaignID
		r.s.campaignByKey[key] = c.ID
	}
	r.s.campaigns[c.ID] = c
	if d.ID == 0 {
		r.s.nextDailyID++
		d.ID = r.s.nextDailyID
	}
	d.CampaignID = c.ID
	r.s.daily[dailyKey{campaignID: c.ID, date: day}] = d
	return &c, nil
}

func (r campaignRepo) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (r campaignRepo) List(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.s.campaigns))
	for _, c := range r.s.campaigns {
		if filter.AccountID != nil && c.AccountID != *filter.AccountID {
			continue
		}
		if filter.Platform != "" && c.Platform != filter.Platform {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r campaignRepo) ListDaily(_ context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.DailyMetric
	for k, d := range r.s.daily {
		if k.campaignID != campaignID || !inRange(d.Date, from, to) {
			continue
		}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b domain.DailyMetric) int { return a.Date.Compare(b.Date) })
	return out, nil
}

type batchRepo struct{ s *Store }

func (r batchRepo) Create(_ context.Context, b *domain.ImportBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.batches[b.ID]; ok {
		return port.ErrConflict
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.s.now()
	}
	r.s.batches[b.ID] = *b
	r.s.nextBatch++
	r.s.batchSeq[b.ID] = r.s.nextBatch
	return nil
}

func (r batchRepo) Transition(_ context.Context, id string, from domain.BatchStatus, upd domain.BatchUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return port.ErrNotFound
	}
	if b.Status != from {
		return port.ErrConflict
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
	r.s.batches[id] = b
	return nil
}

func (r batchRepo) Get(_ context.Context, id string) (*domain.ImportBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &b, nil
}

func (r batchRepo) List(_ context.Context, filter port.BatchFilter) ([]domain.ImportBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.ImportBatch
	for _, b := range r.s.batches {
		if filter.SubmittedBy != nil && (b.SubmittedBy == nil || *b.SubmittedBy != *filter.SubmittedBy) {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b domain.ImportBatch) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(r.s.batchSeq[b.ID], r.s.batchSeq[a.ID])
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r batchRepo) ExistsByFilename(_ context.Context, filename string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.batches {
		if b.Filename == filename {
			return true, nil
		}
	}
	return false, nil
}

type reportRepo struct{ s *Store }

func (r reportRepo) DailyTotals(_ context.Context, filter port.ReportFilter) ([]port.DailyTotal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	type bucket struct {
		date     time.Time
		platform domain.Platform
	}
	sums := make(map[bucket]domain.Counters)
	for k, d := range r.s.daily {
		c := r.s.campaigns[k.campaignID]
		if filter.AccountID != nil && c.AccountID != *filter.AccountID {
			continue
		}
		if !inRange(d.Date, filter.From, filter.To) {
			continue
		}
		b := bucket{date: d.Date, platform: c.Platform}
		sums[b] = sums[b].Add(d.Counters)
	}
	out := make([]port.DailyTotal, 0, len(sums))
	for b, c := range sums {
		out = append(out, port.DailyTotal{Date: b.date, Platform: b.platform, Counters: c})
	}
	slices.SortFunc(out, func(a, b port.DailyTotal) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Platform, b.Platform)
	})
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(domain.Day(from)) {
		return false
	}
	if !to.IsZero() && t.After(domain.Day(to)) {
		return false
	}
	return true
}
