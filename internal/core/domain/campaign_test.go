package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBrandAwareness(t *testing.T) {
	c := Counters{Impressions: 100, Clicks: 5, Spend: decimal.RequireFromString("10.0"), Reach: 50}
	d := c.Derive()

	assert.InDelta(t, 5.0, d.CTR, 1e-9)
	assert.InDelta(t, 2.0, d.CPC, 1e-9)
	assert.InDelta(t, 100.0, d.CPM, 1e-9)
	assert.InDelta(t, 0.2, d.CPV, 1e-9)
	assert.InDelta(t, 2.0, d.CPA, 1e-9)
}

func TestDeriveZeroDenominators(t *testing.T) {
	tests := []struct {
		name string
		in   Counters
		want func(t *testing.T, d Derived)
	}{
		{
			name: "no impressions",
			in:   Counters{Clicks: 3, Spend: decimal.NewFromInt(9), Reach: 3},
			want: func(t *testing.T, d Derived) {
				assert.Zero(t, d.CTR)
				assert.Zero(t, d.CPM)
				assert.InDelta(t, 3.0, d.CPC, 1e-9)
			},
		},
		{
			name: "no clicks",
			in:   Counters{Impressions: 10, Spend: decimal.NewFromInt(9), Reach: 3},
			want: func(t *testing.T, d Derived) {
				assert.Zero(t, d.CPC)
				assert.Zero(t, d.CPA)
				assert.InDelta(t, 900.0, d.CPM, 1e-9)
			},
		},
		{
			name: "no reach",
			in:   Counters{Impressions: 10, Clicks: 1, Spend: decimal.NewFromInt(9)},
			want: func(t *testing.T, d Derived) {
				assert.Zero(t, d.CPV)
				assert.InDelta(t, 10.0, d.CTR, 1e-9)
			},
		},
		{
			name: "empty",
			in:   Counters{},
			want: func(t *testing.T, d Derived) {
				assert.Equal(t, Derived{}, d)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, tt.in.Derive())
		})
	}
}

func TestAccumulateKeepsReachHighWaterMark(t *testing.T) {
	var c Counters
	rows := []Counters{
		{Impressions: 10, Clicks: 1, Spend: decimal.RequireFromString("1.50"), Reach: 40},
		{Impressions: 5, Clicks: 2, Spend: decimal.RequireFromString("0.25"), Reach: 10},
		{Impressions: 1, Reach: 60},
	}
	prev := int64(0)
	for _, r := range rows {
		c.Accumulate(r)
		assert.GreaterOrEqual(t, c.Reach, prev)
		assert.Equal(t, max(prev, r.Reach), c.Reach)
		prev = c.Reach
	}

	assert.Equal(t, int64(16), c.Impressions)
	assert.Equal(t, int64(3), c.Clicks)
	assert.True(t, decimal.RequireFromString("1.75").Equal(c.Spend))
	assert.Equal(t, int64(60), c.Reach)
}

func TestReplaceOverwritesAdditiveCounters(t *testing.T) {
	c := Counters{Impressions: 100, Clicks: 10, Spend: decimal.NewFromInt(20), Reach: 80}
	c.Replace(Counters{Impressions: 7, Clicks: 1, Spend: decimal.NewFromInt(2), Reach: 30})

	assert.Equal(t, int64(7), c.Impressions)
	assert.Equal(t, int64(1), c.Clicks)
	assert.True(t, decimal.NewFromInt(2).Equal(c.Spend))
	assert.Equal(t, int64(80), c.Reach, "reach never moves down")
}

func TestCounterAddSumsReach(t *testing.T) {
	got := Counters{Impressions: 1, Reach: 5}.Add(Counters{Impressions: 2, Reach: 7})
	assert.Equal(t, int64(3), got.Impressions)
	assert.Equal(t, int64(12), got.Reach)
}

func TestCampaignRemainingBudget(t *testing.T) {
	c := Campaign{Budget: decimal.NewFromInt(50)}
	c.Spend = decimal.RequireFromString("12.5")
	assert.Equal(t, "37.5", c.RemainingBudget().String())

	c.Spend = decimal.NewFromInt(80)
	assert.True(t, c.RemainingBudget().IsZero())
}

func TestCampaignRecompute(t *testing.T) {
	c := Campaign{AccountID: 1, Name: "Brand Awareness", Platform: PlatformFacebook}
	c.Accumulate(Counters{Impressions: 100, Clicks: 5, Spend: decimal.NewFromInt(10), Reach: 50})
	require.Zero(t, c.CTR)

	c.Recompute()
	assert.InDelta(t, 5.0, c.CTR, 1e-9)
	assert.Equal(t, CampaignKey{AccountID: 1, Name: "Brand Awareness", Platform: PlatformFacebook}, c.Key())
}

func TestDayKeepsWallClockDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 1, 1, 2, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Day(in))
}
