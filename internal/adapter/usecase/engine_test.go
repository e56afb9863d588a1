package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-reconciler/internal/adapter/memory"
	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
	"ads-reconciler/internal/core/port/mocks"
)

const genericHeader = "client_email,campaign_name,platform,date,impressions,clicks,spent,reach,budget,status\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type engineFixture struct {
	repos  port.Repositories
	ledger *Ledger
	engine *Engine
}

func newEngineFixture(t *testing.T, emails ...string) *engineFixture {
	t.Helper()
	repos := memory.NewStore().Repositories()
	for _, email := range emails {
		require.NoError(t, repos.Accounts.Create(context.Background(), &domain.Account{Email: email, Username: domain.UsernameFromEmail(email)}))
	}
	ledger := NewLedger(repos.Batches)
	engine := NewEngine(repos.Accounts, repos.Campaigns, ledger, discardLogger())
	engine.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return &engineFixture{repos: repos, ledger: ledger, engine: engine}
}

func (f *engineFixture) process(t *testing.T, profile, data string) *port.BatchResult {
	t.Helper()
	opts, err := ingest.ProfileOptions(profile)
	require.NoError(t, err)
	return f.processWith(t, opts, data)
}

func (f *engineFixture) processWith(t *testing.T, opts ingest.Options, data string) *port.BatchResult {
	t.Helper()
	res, err := f.engine.Process(context.Background(), port.ImportRequest{
		Filename: "export.csv",
		Data:     []byte(data),
		Source:   domain.SourceUpload,
		Options:  opts,
	})
	require.NoError(t, err)
	return res
}

func (f *engineFixture) onlyCampaign(t *testing.T) domain.Campaign {
	t.Helper()
	list, err := f.repos.Campaigns.List(context.Background(), port.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0]
}

func (f *engineFixture) daily(t *testing.T, campaignID int64) []domain.DailyMetric {
	t.Helper()
	days, err := f.repos.Campaigns.ListDaily(context.Background(), campaignID, time.Time{}, time.Time{})
	require.NoError(t, err)
	return days
}

func TestProcessCreatesCampaignWithDerivedMetrics(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileAgency, genericHeader+
		"A@X.com,Brand Awareness,facebook,2024-01-01,100,5,10.0,50,,\n")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.RowsProcessed)
	assert.Zero(t, res.RowsFailed)
	assert.Equal(t, 1, res.AccountsTouched)

	c := f.onlyCampaign(t)
	assert.Equal(t, "Brand Awareness", c.Name)
	assert.Equal(t, domain.PlatformFacebook, c.Platform)
	assert.Equal(t, int64(100), c.Impressions)
	assert.Equal(t, int64(5), c.Clicks)
	assert.True(t, decimal.NewFromInt(10).Equal(c.Spend))
	assert.Equal(t, int64(50), c.Reach)
	assert.InDelta(t, 5.0, c.CTR, 1e-9)
	assert.InDelta(t, 2.0, c.CPC, 1e-9)
	assert.InDelta(t, 100.0, c.CPM, 1e-9)
	assert.InDelta(t, 0.2, c.CPV, 1e-9)
	assert.Equal(t, "Active", c.Status, "default status applies at creation")

	days := f.daily(t, c.ID)
	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, c.Counters.Impressions, days[0].Impressions)
	assert.True(t, c.Spend.Equal(days[0].Spend))
	assert.Equal(t, c.Reach, days[0].Reach)

	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchCompleted, batch.Status)
	assert.NotNil(t, batch.StartedAt)
	assert.NotNil(t, batch.CompletedAt)
}

func TestProcessPartialFailureStillCompletes(t *testing.T) {
	f := newEngineFixture(t, "a@x.com", "b@x.com")
	var b strings.Builder
	b.WriteString(genericHeader)
	for i := 1; i <= 10; i++ {
		email := "a@x.com"
		if i%2 == 0 {
			email = "b@x.com"
		}
		if i == 4 {
			email = "ghost@x.com"
		}
		fmt.Fprintf(&b, "%s,Campaign %d,google,2024-01-0%d,10,1,1.00,5,,\n", email, i%3, i%9+1)
	}

	res := f.process(t, ingest.ProfileAgency, b.String())

	assert.True(t, res.Success)
	assert.Equal(t, 9, res.RowsProcessed)
	assert.Equal(t, 1, res.RowsFailed)
	assert.Equal(t, 2, res.AccountsTouched)
	assert.Empty(t, res.Error)
	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 5, res.RowErrors[0].Line)
	assert.Equal(t, "ghost@x.com", res.RowErrors[0].Account)
	assert.ErrorIs(t, res.RowErrors[0], ErrAccountNotFound)

	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchCompleted, batch.Status)
	assert.Equal(t, 9, batch.RowsProcessed)
	assert.Equal(t, 1, batch.RowsFailed)
}

func TestProcessMissingSpentColumnFailsBatch(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileAgency,
		"client_email,campaign_name,date,impressions,clicks\na@x.com,Search,2024-01-01,1,1\n")

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "spent")
	assert.Zero(t, res.RowsProcessed)

	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchFailed, batch.Status)
	assert.Contains(t, batch.Error, "spent")
	assert.NotNil(t, batch.CompletedAt)

	list, err := f.repos.Campaigns.List(context.Background(), port.CampaignFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProcessUnreadableFileFailsBatch(t *testing.T) {
	f := newEngineFixture(t)
	res := f.process(t, ingest.ProfileAgency, "   \n")

	assert.False(t, res.Success)
	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchFailed, batch.Status)
	assert.NotEmpty(t, batch.Error)
}

func TestProcessRerunAccumulates(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	data := genericHeader + "a@x.com,Search,google,2024-01-01,100,5,10.00,50,500,Paused\n"

	f.process(t, ingest.ProfileAgency, data)
	f.process(t, ingest.ProfileAgency, data)

	c := f.onlyCampaign(t)
	assert.Equal(t, int64(200), c.Impressions)
	assert.Equal(t, int64(10), c.Clicks)
	assert.True(t, decimal.NewFromInt(20).Equal(c.Spend))
	assert.Equal(t, int64(50), c.Reach, "reach is a high-water mark")
	assert.InDelta(t, 0.4, c.CPV, 1e-9)

	days := f.daily(t, c.ID)
	require.Len(t, days, 1)
	assert.Equal(t, int64(200), days[0].Impressions)
	assert.Equal(t, int64(50), days[0].Reach)
}

func TestProcessReachNeverDecreases(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	prev := int64(0)
	for _, reach := range []int64{40, 80, 30, 80, 95, 0} {
		f.process(t, ingest.ProfileAgency, genericHeader+
			fmt.Sprintf("a@x.com,Search,google,2024-01-01,1,0,0,%d,,\n", reach))
		c := f.onlyCampaign(t)
		assert.Equal(t, max(prev, reach), c.Reach)
		days := f.daily(t, c.ID)
		require.Len(t, days, 1)
		assert.Equal(t, c.Reach, days[0].Reach)
		prev = c.Reach
	}
}

func TestProcessSameDayRowsAccumulateInOrder(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileAgency, genericHeader+
		"a@x.com,Search,google,2024-01-01,10,1,1.25,5,,\n"+
		"a@x.com,Search,google,2024-01-01,20,2,2.50,3,,\n"+
		"a@x.com,Search,google,2024-01-02,5,0,0.25,9,,\n")
	require.Equal(t, 3, res.RowsProcessed)

	c := f.onlyCampaign(t)
	assert.Equal(t, int64(35), c.Impressions)
	assert.Equal(t, "4", c.Spend.String())
	assert.Equal(t, int64(9), c.Reach)

	days := f.daily(t, c.ID)
	require.Len(t, days, 2)
	assert.Equal(t, int64(30), days[0].Impressions)
	assert.Equal(t, "3.75", days[0].Spend.String())
	assert.Equal(t, int64(5), days[0].Reach)
	assert.Equal(t, int64(5), days[1].Impressions)
}

func TestProcessAccumulateKeepsCreationBudgetAndStatus(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	f.process(t, ingest.ProfileAgency, genericHeader+"a@x.com,Search,google,2024-01-01,1,0,0,0,500,Paused\n")
	f.process(t, ingest.ProfileAgency, genericHeader+"a@x.com,Search,google,2024-01-02,1,0,0,0,900,Active\n")

	c := f.onlyCampaign(t)
	assert.Equal(t, "500", c.Budget.String())
	assert.Equal(t, "Paused", c.Status)
}

func TestProcessSnapshotReplaces(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	opts, err := ingest.ProfileOptions(ingest.ProfileAgency)
	require.NoError(t, err)
	opts.MetricPolicy = ingest.MetricSnapshot

	f.processWith(t, opts, genericHeader+"a@x.com,Search,google,2024-01-01,100,10,20.00,80,500,Paused\n")
	f.processWith(t, opts, genericHeader+"a@x.com,Search,google,2024-01-01,40,4,8.00,30,900,Active\n")

	c := f.onlyCampaign(t)
	assert.Equal(t, int64(40), c.Impressions)
	assert.Equal(t, int64(4), c.Clicks)
	assert.Equal(t, "8", c.Spend.String())
	assert.Equal(t, int64(80), c.Reach)
	assert.Equal(t, "900", c.Budget.String())
	assert.Equal(t, "Active", c.Status)
	assert.InDelta(t, 10.0, c.CTR, 1e-9)

	// Rows without budget or status leave them alone.
	f.processWith(t, opts, genericHeader+"a@x.com,Search,google,2024-01-01,50,5,9.00,10,,\n")
	c = f.onlyCampaign(t)
	assert.Equal(t, int64(50), c.Impressions)
	assert.Equal(t, "900", c.Budget.String())
	assert.Equal(t, "Active", c.Status)

	days := f.daily(t, c.ID)
	require.Len(t, days, 1)
	assert.Equal(t, int64(50), days[0].Impressions)
	assert.Equal(t, int64(80), days[0].Reach)
}

func TestProcessProvisionsUnknownAccounts(t *testing.T) {
	f := newEngineFixture(t)
	res := f.process(t, ingest.ProfileBootstrap, genericHeader+
		"new@x.com,Search,google,2024-01-01,1,1,1,1,,\n"+
		"NEW@x.com,Display,google,2024-01-01,1,1,1,1,,\n")

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 1, res.AccountsTouched)

	acc, err := f.repos.Accounts.FindByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	assert.True(t, acc.Placeholder)
	assert.Equal(t, "new", acc.Username)
	assert.NotEmpty(t, acc.PasswordHash)

	n, err := f.repos.Accounts.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProcessOwnerPolicy(t *testing.T) {
	f := newEngineFixture(t, "owner@x.com")
	owner, err := f.repos.Accounts.FindByEmail(context.Background(), "owner@x.com")
	require.NoError(t, err)
	opts, err := ingest.ProfileOptions(ingest.ProfileSelfService)
	require.NoError(t, err)

	data := "campaign_name,date,impressions,clicks,spend\nSearch,2024-01-01,10,1,2\n"
	res, err := f.engine.Process(context.Background(), port.ImportRequest{
		Filename:  "mine.csv",
		Data:      []byte(data),
		Submitter: owner,
		Source:    domain.SourceUpload,
		Options:   opts,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, owner.ID, f.onlyCampaign(t).AccountID)

	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	require.NotNil(t, batch.SubmittedBy)
	assert.Equal(t, owner.ID, *batch.SubmittedBy)

	_, err = f.engine.Process(context.Background(), port.ImportRequest{Filename: "anon.csv", Data: []byte(data), Options: opts})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
	seen, err := f.ledger.Seen(context.Background(), "anon.csv")
	require.NoError(t, err)
	assert.False(t, seen, "refused requests leave no ledger record")
}

func TestProcessRejectsInvalidOptions(t *testing.T) {
	f := newEngineFixture(t)
	_, err := f.engine.Process(context.Background(), port.ImportRequest{Filename: "x.csv", Data: []byte("a\n1\n")})
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestProcessStrictDateRejectsRow(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileScheduled, genericHeader+
		"a@x.com,Search,google,someday,1,1,1,1,,\n"+
		"a@x.com,Search,google,2024-01-01,1,1,1,1,,\n")

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.RowsProcessed)
	assert.Equal(t, 1, res.RowsFailed)
	require.Len(t, res.RowErrors, 1)
	assert.ErrorIs(t, res.RowErrors[0], ingest.ErrInvalidDate)
	assert.Equal(t, "Search", res.RowErrors[0].Campaign)
}

func TestProcessStrictDateRejectsJunkParsedAsYearZero(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileScheduled, genericHeader+
		"a@x.com,Search,google,7/,1,1,1,1,,\n"+
		"a@x.com,Search,google,1.1.1.1,1,1,1,1,,\n"+
		"a@x.com,Search,google,2024-01-01,1,1,1,1,,\n")

	assert.Equal(t, 1, res.RowsProcessed)
	assert.Equal(t, 2, res.RowsFailed)
	for _, re := range res.RowErrors {
		assert.ErrorIs(t, re, ingest.ErrInvalidDate)
	}
	days := f.daily(t, f.onlyCampaign(t).ID)
	require.Len(t, days, 1)
	assert.Equal(t, 2024, days[0].Date.Year())
}

func TestProcessOverflowingCountDefaultsToZero(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileAgency, genericHeader+
		"a@x.com,Search,google,2024-01-01,9223372036854775808,5,10,1,,\n")

	assert.Equal(t, 1, res.RowsProcessed)
	c := f.onlyCampaign(t)
	assert.Zero(t, c.Impressions)
	assert.Equal(t, int64(5), c.Clicks)
}

func TestEngineClockIsUTC(t *testing.T) {
	e := NewEngine(nil, nil, nil, discardLogger())
	assert.Equal(t, time.UTC, e.now().Location())
}

func TestProcessMalformedLineCountsAsFailedRow(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	res := f.process(t, ingest.ProfileScheduled, genericHeader+
		"a@x.com,Search,google,2024-01-01,1,1,1,1,,\n"+
		"a@x.com,Sea\"rch,google,2024-01-01,1,1,1,1,,\n"+
		"a@x.com,Search,google,2024-01-02,1,1,1,1,,\n")

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 1, res.RowsFailed)
	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 3, res.RowErrors[0].Line)
}

func TestProcessBoundsRowErrors(t *testing.T) {
	f := newEngineFixture(t)
	opts, err := ingest.ProfileOptions(ingest.ProfileAgency)
	require.NoError(t, err)
	opts.MaxRowErrors = 2

	var b strings.Builder
	b.WriteString(genericHeader)
	for i := range 5 {
		fmt.Fprintf(&b, "nobody%d@x.com,Search,google,2024-01-01,1,1,1,1,,\n", i)
	}
	res := f.processWith(t, opts, b.String())

	assert.True(t, res.Success)
	assert.Equal(t, 5, res.RowsFailed)
	assert.Len(t, res.RowErrors, 2)
}

func TestProcessCancelledBetweenRows(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	opts, err := ingest.ProfileOptions(ingest.ProfileAgency)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := f.engine.Process(ctx, port.ImportRequest{
		Filename: "big.csv",
		Data:     []byte(genericHeader + "a@x.com,Search,google,2024-01-01,1,1,1,1,,\na@x.com,Search,google,2024-01-02,1,1,1,1,,\n"),
		Options:  opts,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "cancelled after 0 of 2 rows")

	batch, err := f.ledger.Get(context.Background(), res.BatchID)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchFailed, batch.Status)
}

func TestProcessConcurrentBatchesSerializePerCampaign(t *testing.T) {
	f := newEngineFixture(t, "a@x.com")
	data := genericHeader + "a@x.com,Search,google,2024-01-01,100,5,1.10,50,,\n"

	const batches = 8
	var wg sync.WaitGroup
	wg.Add(batches)
	for range batches {
		go func() {
			defer wg.Done()
			opts, _ := ingest.ProfileOptions(ingest.ProfileAgency)
			_, _ = f.engine.Process(context.Background(), port.ImportRequest{Filename: "same.csv", Data: []byte(data), Options: opts})
		}()
	}
	wg.Wait()

	c := f.onlyCampaign(t)
	assert.Equal(t, int64(batches*100), c.Impressions)
	assert.Equal(t, "8.8", c.Spend.String())
	days := f.daily(t, c.ID)
	require.Len(t, days, 1)
	assert.Equal(t, int64(batches*5), days[0].Clicks)
}

func TestProcessCachesAccountLookups(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	store := memory.NewStore().Repositories()
	engine := NewEngine(accounts, store.Campaigns, NewLedger(store.Batches), discardLogger())

	accounts.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		Return(&domain.Account{ID: 7, Email: "a@x.com"}, nil).
		Once()
	accounts.EXPECT().
		FindByEmail(mock.Anything, "ghost@x.com").
		Return(nil, port.ErrNotFound).
		Once()

	opts, err := ingest.ProfileOptions(ingest.ProfileAgency)
	require.NoError(t, err)
	res, err := engine.Process(context.Background(), port.ImportRequest{
		Filename: "cache.csv",
		Data: []byte(genericHeader +
			"a@x.com,One,google,2024-01-01,1,1,1,1,,\n" +
			"ghost@x.com,One,google,2024-01-01,1,1,1,1,,\n" +
			"a@x.com,Two,google,2024-01-01,1,1,1,1,,\n" +
			"ghost@x.com,Two,google,2024-01-01,1,1,1,1,,\n"),
		Options: opts,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 2, res.RowsFailed)
}
