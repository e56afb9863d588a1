package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DecodedRow is one fully decoded input row, ready for reconciliation.
type DecodedRow struct {
	// Line is the 1-based line number in the source file (header is line 1).
	Line         int
	AccountKey   string
	CampaignName string
	Platform     Platform
	Date         time.Time
	Counters
	Budget decimal.Decimal
	// Status is empty when the row carries none.
	Status string
}
