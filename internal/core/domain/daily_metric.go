package domain

import "time"

// DailyMetric is the per-day slice of a campaign's counters, identified by
// (campaign, date). Date is always midnight UTC.
type DailyMetric struct {
	ID         int64
	CampaignID int64
	Date       time.Time
	Counters
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Day truncates t to a calendar date at midnight UTC, keeping the wall-clock
// date of t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
