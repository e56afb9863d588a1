package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-reconciler/internal/core/domain"
)

func TestParseInt(t *testing.T) {
	tests := map[string]int64{
		"1,234":    1234,
		"$1,234":   0,
		"":         0,
		"abc":      0,
		"  42 ":    42,
		"12.9":     12,
		"1 000":    1000,
		"nan":      0,
		"-7":       -7,
		"3,000.75": 3000,

		"9223372036854775807":  9223372036854775807,
		"9223372036854775808":  0,
		"-9223372036854775809": 0,
		"18446744073709551617": 0,
		"1e30":                 0,
		"1e3":                  1000,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseInt(in), "input %q", in)
	}
}

func TestParseCurrency(t *testing.T) {
	tests := map[string]string{
		"$1,234.50": "1234.5",
		"1,234":     "1234",
		"":          "0",
		"abc":       "0",
		"€12.00":    "12",
		"10.0 USD":  "10",
		"-$3.25":    "-3.25",
		"R$99.90":   "99.9",
		"0.1":       "0.1",
	}
	for in, want := range tests {
		assert.True(t, decimal.RequireFromString(want).Equal(ParseCurrency(in)), "input %q: got %s", in, ParseCurrency(in))
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-01-02", "2024-01-02 15:04:05", "01/02/2024", "Jan 2, 2024", "2024/01/02"} {
		got, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseDate("")
	assert.ErrorIs(t, err, ErrMissingValue)
	_, err = ParseDate("NaT")
	assert.ErrorIs(t, err, ErrMissingValue)
	_, err = ParseDate("not a date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	for _, in := range []string{"7/", "1.2.3.4.5", "1.1.1.1", "12/31/0001"} {
		got, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q parsed as %s", in, got)
	}
}

func newTestDecoder(t *testing.T, headers []string, opts Options, now time.Time) *Decoder {
	t.Helper()
	detected := DetectPlatform(headers)
	fields := append(opts.RequiredFields(), opts.OptionalFields()...)
	mapping := NewResolver(opts.SynonymScope, opts.FuzzyDistance).ResolveAll(headers, fields, detected)
	require.Empty(t, mapping.Missing(opts.RequiredFields()))
	return NewDecoder(mapping, opts, detected, func() time.Time { return now })
}

func mustProfile(t *testing.T, name string) Options {
	t.Helper()
	opts, err := ProfileOptions(name)
	require.NoError(t, err)
	return opts
}

func TestDecodeFullRow(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "platform", "date", "impressions", "clicks", "spent", "reach", "budget", "status"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileAgency), time.Now())

	row, err := dec.Decode(2, []string{" A@X.com ", "Brand Awareness", "Facebook", "2024-01-01", "100", "5", "$10.00", "50", "1,000", "Paused"})
	require.NoError(t, err)

	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "a@x.com", row.AccountKey)
	assert.Equal(t, "Brand Awareness", row.CampaignName)
	assert.Equal(t, domain.PlatformFacebook, row.Platform)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, int64(100), row.Impressions)
	assert.Equal(t, int64(5), row.Clicks)
	assert.True(t, decimal.NewFromInt(10).Equal(row.Spend))
	assert.Equal(t, int64(50), row.Reach)
	assert.True(t, decimal.NewFromInt(1000).Equal(row.Budget))
	assert.Equal(t, "Paused", row.Status)
}

func TestDecodeMissingOptionalCells(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "date", "impressions", "clicks", "spent"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileAgency), time.Now())

	row, err := dec.Decode(2, []string{"a@x.com", "Search", "2024-01-01", "abc", "", "n/a"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformUnknown, row.Platform)
	assert.Zero(t, row.Impressions)
	assert.Zero(t, row.Clicks)
	assert.True(t, row.Spend.IsZero())
	assert.Zero(t, row.Reach)
	assert.True(t, row.Budget.IsZero())
	assert.Empty(t, row.Status)
}

func TestDecodeShortRecord(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "date", "impressions", "clicks", "spent"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileAgency), time.Now())

	row, err := dec.Decode(3, []string{"a@x.com", "Search", "2024-01-01"})
	require.NoError(t, err)
	assert.Zero(t, row.Impressions)
}

func TestDecodeDatePolicies(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "platform", "date", "impressions", "clicks", "spent"}
	record := []string{"a@x.com", "Search", "google", "yesterday-ish", "1", "1", "1"}
	now := time.Date(2024, 5, 6, 17, 45, 0, 0, time.UTC)

	lenient := newTestDecoder(t, headers, mustProfile(t, ProfileAgency), now)
	row, err := lenient.Decode(2, record)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), row.Date)

	strict := newTestDecoder(t, headers, mustProfile(t, ProfileScheduled), now)
	_, err = strict.Decode(2, record)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, err.Error(), "date")
}

func TestDecodeRejectsMissingIdentity(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "date", "impressions", "clicks", "spent"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileAgency), time.Now())

	_, err := dec.Decode(2, []string{"", "Search", "2024-01-01", "1", "1", "1"})
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Contains(t, err.Error(), "client_email")

	_, err = dec.Decode(3, []string{"a@x.com", "nan", "2024-01-01", "1", "1", "1"})
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Contains(t, err.Error(), "campaign_name")
}

func TestDecodeRequiredPlatform(t *testing.T) {
	headers := []string{"client_email", "campaign_name", "platform", "date", "impressions", "clicks", "spent"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileScheduled), time.Now())

	_, err := dec.Decode(2, []string{"a@x.com", "Search", " ", "2024-01-01", "1", "1", "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingValue))
}

func TestDecodeOwnerPolicyIgnoresAccountColumn(t *testing.T) {
	headers := []string{"campaign_name", "date", "impressions", "clicks", "spend"}
	dec := newTestDecoder(t, headers, mustProfile(t, ProfileSelfService), time.Now())

	row, err := dec.Decode(2, []string{"Search", "2024-01-01", "10", "1", "2.5"})
	require.NoError(t, err)
	assert.Empty(t, row.AccountKey)
	assert.Equal(t, "2.5", row.Spend.String())
}

func TestDecodePlatformSources(t *testing.T) {
	google := []string{"client_email", "Campaign", "Day", "Impr.", "Clicks", "Cost"}
	dec := newTestDecoder(t, google, mustProfile(t, ProfileAgency), time.Now())
	row, err := dec.Decode(2, []string{"a@x.com", "Search", "2024-01-01", "1,000", "10", "12.30"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformGoogle, row.Platform, "detected platform labels rows without a platform cell")
	assert.Equal(t, int64(1000), row.Impressions)

	opts := mustProfile(t, ProfileAgency)
	opts.PlatformHint = "ShareIt"
	dec = newTestDecoder(t, append(google, "platform"), opts, time.Now())
	row, err = dec.Decode(2, []string{"a@x.com", "Search", "2024-01-01", "1", "1", "1", "facebook"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformShareIT, row.Platform, "a hint beats the cell")
}

func TestDecodeCostMicros(t *testing.T) {
	headers := []string{"customer_email", "campaign", "date", "impressions", "clicks", "cost_micros"}
	opts := mustProfile(t, ProfileAgency)
	opts.AccountField = "customer_email"
	dec := newTestDecoder(t, headers, opts, time.Now())

	row, err := dec.Decode(2, []string{"a@x.com", "Search", "2024-01-01", "10", "1", "2,500,000"})
	require.NoError(t, err)
	assert.Equal(t, "2.5", row.Spend.String())
}
