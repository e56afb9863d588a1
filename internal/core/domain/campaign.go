package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignKey is the identity of a campaign: name, platform and owning account.
type CampaignKey struct {
	AccountID int64
	Name      string
	Platform  Platform
}

// Counters are the accumulated delivery metrics shared by campaigns and daily
// records. Impressions, clicks and spend are additive; reach is a gauge and
// only ever moves up.
type Counters struct {
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	Reach       int64
}

// Accumulate adds d to c, keeping the high-water mark for reach.
func (c *Counters) Accumulate(d Counters) {
	c.Impressions += d.Impressions
	c.Clicks += d.Clicks
	c.Spend = c.Spend.Add(d.Spend)
	c.Reach = max(c.Reach, d.Reach)
}

// Replace overwrites the additive counters with d. Reach still keeps its
// high-water mark.
func (c *Counters) Replace(d Counters) {
	c.Impressions = d.Impressions
	c.Clicks = d.Clicks
	c.Spend = d.Spend
	c.Reach = max(c.Reach, d.Reach)
}

// Add sums two counter sets, reach included. It is used for reporting
// roll-ups across campaigns, where reach is summed like the other counters.
func (c Counters) Add(d Counters) Counters {
	return Counters{
		Impressions: c.Impressions + d.Impressions,
		Clicks:      c.Clicks + d.Clicks,
		Spend:       c.Spend.Add(d.Spend),
		Reach:       c.Reach + d.Reach,
	}
}

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Derived holds the ratios computed from Counters. Every ratio is zero when
// its denominator is zero.
type Derived struct {
	CTR float64 // clicks / impressions * 100
	CPC float64 // spend / clicks
	CPM float64 // spend / impressions * 1000
	CPV float64 // spend / reach
	CPA float64 // same as CPC; clicks stand in for conversions
}

// Derive computes the derived metrics for c.
func (c Counters) Derive() Derived {
	var d Derived
	if c.Impressions > 0 {
		impressions := decimal.NewFromInt(c.Impressions)
		d.CTR = decimal.NewFromInt(c.Clicks).Mul(hundred).Div(impressions).InexactFloat64()
		d.CPM = c.Spend.Mul(thousand).Div(impressions).InexactFloat64()
	}
	if c.Clicks > 0 {
		d.CPC = c.Spend.Div(decimal.NewFromInt(c.Clicks)).InexactFloat64()
		d.CPA = d.CPC
	}
	if c.Reach > 0 {
		d.CPV = c.Spend.Div(decimal.NewFromInt(c.Reach)).InexactFloat64()
	}
	return d
}

// Campaign represents an advertising campaign owned by an account. Budget and
// status are set when the campaign is created; counters accumulate over imports.
type Campaign struct {
	ID        int64
	AccountID int64
	Name      string
	Platform  Platform
	Status    string
	Budget    decimal.Decimal
	Counters
	Derived
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the identity tuple of the campaign.
func (c *Campaign) Key() CampaignKey {
	return CampaignKey{AccountID: c.AccountID, Name: c.Name, Platform: c.Platform}
}

// Recompute refreshes the derived metrics from the current counters. It must
// follow every counter mutation.
func (c *Campaign) Recompute() {
	c.Derived = c.Counters.Derive()
}

// RemainingBudget is the unspent part of the budget, never negative.
func (c *Campaign) RemainingBudget() decimal.Decimal {
	rest := c.Budget.Sub(c.Spend)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
