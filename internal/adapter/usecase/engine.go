package usecase

import (
	"cmp"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
)

// ErrAccountNotFound rejects a row whose account key matches no account under
// the lookup policy.
var ErrAccountNotFound = errors.New("account not found")

// Engine reconciles decoded rows into campaign and daily state. One call to
// Process handles one batch sequentially, in file order.
type Engine struct {
	accounts  port.AccountRepository
	campaigns port.CampaignRepository
	ledger    *Ledger
	log       *slog.Logger
	now       func() time.Time
}

func NewEngine(accounts port.AccountRepository, campaigns port.CampaignRepository, ledger *Ledger, log *slog.Logger) *Engine {
	return &Engine{
		accounts:  accounts,
		campaigns: campaigns,
		ledger:    ledger,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Process records a batch for req, reads and reconciles it, and returns the
// summary. Row failures and batch-level failures are reported on the result;
// the returned error is reserved for invalid requests and ledger failures.
func (e *Engine) Process(ctx context.Context, req port.ImportRequest) (*port.BatchResult, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidRequest, err)
	}
	if opts.AccountPolicy == ingest.AccountOwner && req.Submitter == nil {
		return nil, fmt.Errorf("%w: profile %q needs an authenticated submitter", port.ErrInvalidRequest, opts.Profile)
	}

	draft := domain.ImportBatch{
		Filename: req.Filename,
		FilePath: req.FilePath,
		Source:   req.Source,
		Profile:  opts.Profile,
	}
	if req.Submitter != nil {
		id := req.Submitter.ID
		draft.SubmittedBy = &id
	}
	batch, err := e.ledger.Submit(ctx, draft)
	if err != nil {
		return nil, err
	}
	log := e.log.With("batch", batch.ID, "file", batch.Filename, "profile", batch.Profile)

	if err := e.ledger.Start(ctx, batch); err != nil {
		return nil, err
	}
	log.Info("import started", "source", batch.Source)

	run := &batchRun{
		engine:    e,
		req:       req,
		opts:      opts,
		batch:     batch,
		log:       log,
		accounts:  make(map[string]accountHit),
		touched:   make(map[int64]struct{}),
		maxErrors: cmp.Or(max(opts.MaxRowErrors, 0), ingest.DefaultMaxRowErrors),
	}
	return run.execute(ctx)
}

type accountHit struct {
	account *domain.Account
	err     error
}

// batchRun is the state of one Process call.
type batchRun struct {
	engine *Engine
	req    port.ImportRequest
	opts   ingest.Options
	batch  *domain.ImportBatch
	log    *slog.Logger

	platform  domain.Platform
	processed int
	failed    int
	rowErrors []*port.RowError
	maxErrors int

	accounts map[string]accountHit
	touched  map[int64]struct{}
}

type workItem struct {
	line  int
	cells []string
	err   error
}

func (r *batchRun) execute(ctx context.Context) (*port.BatchResult, error) {
	table, err := ingest.ReadTable(r.req.Data, r.opts.ReadMode, r.opts.AllowSpreadsheets)
	if err != nil {
		return r.fail(ctx, err)
	}

	r.platform = ingest.DetectPlatform(table.Headers)
	resolver := ingest.NewResolver(r.opts.SynonymScope, r.opts.FuzzyDistance)
	required := r.opts.RequiredFields()
	mapping := resolver.ResolveAll(table.Headers, append(slices.Clone(required), r.opts.OptionalFields()...), r.platform)
	if missing := mapping.Missing(required); len(missing) > 0 {
		return r.fail(ctx, &ingest.MissingColumnsError{Fields: missing})
	}
	r.log.Debug("columns resolved",
		"platform", r.platform, "encoding", table.Encoding, "delimiter", string(table.Delimiter),
		"format", table.Format, "mapping", mappingAttr(mapping))

	items := make([]workItem, 0, len(table.Rows)+len(table.Malformed))
	for _, rec := range table.Rows {
		items = append(items, workItem{line: rec.Line, cells: rec.Cells})
	}
	for _, m := range table.Malformed {
		items = append(items, workItem{line: m.Line, err: m.Err})
	}
	slices.SortStableFunc(items, func(a, b workItem) int { return cmp.Compare(a.line, b.line) })

	decoder := ingest.NewDecoder(mapping, r.opts, r.platform, r.engine.now)
	for i, it := range items {
		if err := ctx.Err(); err != nil {
			return r.cancel(ctx, i, len(items), err)
		}
		if it.err != nil {
			r.reject(&port.RowError{Line: it.line, Cause: it.err})
			continue
		}
		row, err := decoder.Decode(it.line, it.cells)
		if err != nil {
			r.reject(&port.RowError{Line: it.line, Account: row.AccountKey, Campaign: row.CampaignName, Cause: err})
			continue
		}
		if err := r.apply(ctx, row); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return r.cancel(ctx, i, len(items), ctxErr)
			}
			r.reject(&port.RowError{Line: row.Line, Account: row.AccountKey, Campaign: row.CampaignName, Date: row.Date, Cause: err})
			continue
		}
		r.processed++
	}

	if err := r.engine.ledger.Complete(context.WithoutCancel(ctx), r.batch, r.processed, r.failed); err != nil {
		return nil, err
	}
	r.log.Info("import completed",
		"platform", r.platform, "rows_processed", r.processed, "rows_failed", r.failed, "accounts", len(r.touched))
	return r.result(true, ""), nil
}

// apply resolves the owning account and merges row into its campaign.
func (r *batchRun) apply(ctx context.Context, row domain.DecodedRow) error {
	acc, err := r.account(ctx, row.AccountKey)
	if err != nil {
		return err
	}
	seed := domain.Campaign{
		AccountID: acc.ID,
		Name:      row.CampaignName,
		Platform:  row.Platform,
		Status:    cmp.Or(row.Status, r.opts.DefaultStatus),
		Budget:    row.Budget,
	}
	if _, err := r.engine.campaigns.Reconcile(ctx, seed, row.Date, mergeRow(r.opts.MetricPolicy, row)); err != nil {
		return fmt.Errorf("reconcile campaign: %w", err)
	}
	r.touched[acc.ID] = struct{}{}
	return nil
}

// mergeRow returns the update applied under the repository's lock. Accumulate
// adds counters and leaves budget and status as created. Snapshot replaces
// counters and takes budget and status from the row when it carries them.
// Reach keeps its high-water mark under both policies.
func mergeRow(policy ingest.MetricPolicy, row domain.DecodedRow) port.MergeFunc {
	return func(c *domain.Campaign, d *domain.DailyMetric, created bool) {
		if policy == ingest.MetricSnapshot {
			c.Counters.Replace(row.Counters)
			d.Counters.Replace(row.Counters)
			if !created {
				if !row.Budget.IsZero() {
					c.Budget = row.Budget
				}
				if row.Status != "" {
					c.Status = row.Status
				}
			}
			return
		}
		c.Counters.Accumulate(row.Counters)
		d.Counters.Accumulate(row.Counters)
	}
}

// account resolves the owner of a row according to the account policy.
// Results, including misses, are cached for the batch.
func (r *batchRun) account(ctx context.Context, key string) (*domain.Account, error) {
	if r.opts.AccountPolicy == ingest.AccountOwner {
		return r.req.Submitter, nil
	}
	if hit, ok := r.accounts[key]; ok {
		return hit.account, hit.err
	}

	acc, err := r.engine.accounts.FindByEmail(ctx, key)
	switch {
	case errors.Is(err, port.ErrNotFound) && r.opts.AccountPolicy == ingest.AccountProvision:
		acc, err = r.provision(ctx, key)
	case errors.Is(err, port.ErrNotFound):
		err = fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		// Storage errors are not cached; a later row may succeed.
		return nil, err
	}
	r.accounts[key] = accountHit{account: acc, err: err}
	return acc, err
}

// provision creates a placeholder account with a random password that the
// owner is expected to reset.
func (r *batchRun) provision(ctx context.Context, email string) (*domain.Account, error) {
	secret := make([]byte, 12)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc := &domain.Account{
		Email:        email,
		Username:     domain.UsernameFromEmail(email),
		PasswordHash: string(hash),
		Placeholder:  true,
	}
	err = r.engine.accounts.Create(ctx, acc)
	if errors.Is(err, port.ErrConflict) {
		return r.engine.accounts.FindByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("provision account: %w", err)
	}
	r.log.Info("placeholder account provisioned", "account", acc.Email, "account_id", acc.ID)
	return acc, nil
}

func (r *batchRun) reject(re *port.RowError) {
	if re.Account == "" && r.opts.AccountPolicy == ingest.AccountOwner {
		re.Account = r.req.Submitter.Email
	}
	r.failed++
	if len(r.rowErrors) < r.maxErrors {
		r.rowErrors = append(r.rowErrors, re)
	}
	r.log.Warn("row rejected", "line", re.Line, "account", re.Account, "campaign", re.Campaign, "err", re.Cause)
}

// fail marks the batch Failed with a batch-level error.
func (r *batchRun) fail(ctx context.Context, cause error) (*port.BatchResult, error) {
	msg := cause.Error()
	if err := r.engine.ledger.Fail(context.WithoutCancel(ctx), r.batch, r.processed, r.failed, msg); err != nil {
		return nil, err
	}
	r.log.Error("import failed", "err", cause)
	return r.result(false, msg), nil
}

func (r *batchRun) cancel(ctx context.Context, done, total int, cause error) (*port.BatchResult, error) {
	return r.fail(ctx, fmt.Errorf("import cancelled after %d of %d rows: %w", done, total, cause))
}

func (r *batchRun) result(success bool, msg string) *port.BatchResult {
	return &port.BatchResult{
		BatchID:         r.batch.ID,
		Success:         success,
		RowsProcessed:   r.processed,
		RowsFailed:      r.failed,
		AccountsTouched: len(r.touched),
		Platform:        r.platform,
		Error:           msg,
		RowErrors:       r.rowErrors,
	}
}

func mappingAttr(m ingest.Mapping) slog.Value {
	attrs := make([]slog.Attr, 0, len(m))
	for f, col := range m {
		attrs = append(attrs, slog.String(string(f), col.Header))
	}
	slices.SortFunc(attrs, func(a, b slog.Attr) int { return cmp.Compare(a.Key, b.Key) })
	return slog.GroupValue(attrs...)
}
