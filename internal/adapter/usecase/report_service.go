package usecase

import (
	"cmp"
	"context"
	"slices"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// DefaultReportDays is the range covered when a report has no bounds.
const DefaultReportDays = 30

// ReportService implements port.ReportUseCase.
type ReportService struct {
	campaigns port.CampaignRepository
	reports   port.ReportRepository
	now       func() time.Time
}

func NewReportService(campaigns port.CampaignRepository, reports port.ReportRepository) *ReportService {
	return &ReportService{campaigns: campaigns, reports: reports, now: time.Now}
}

// Summary rolls daily totals up per day, per platform and overall. Reach is
// summed across campaigns like the other counters.
func (s *ReportService) Summary(ctx context.Context, filter port.ReportFilter) (*port.Report, error) {
	if filter.To.IsZero() {
		filter.To = s.now()
	}
	filter.To = domain.Day(filter.To)
	if filter.From.IsZero() {
		filter.From = filter.To.AddDate(0, 0, -(DefaultReportDays - 1))
	}
	filter.From = domain.Day(filter.From)

	totals, err := s.reports.DailyTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	var (
		days      []port.DayReport
		platforms = make(map[domain.Platform]domain.Counters)
		total     domain.Counters
	)
	for _, t := range totals {
		if n := len(days); n > 0 && days[n-1].Date.Equal(t.Date) {
			days[n-1].Counters = days[n-1].Counters.Add(t.Counters)
		} else {
			days = append(days, port.DayReport{Date: t.Date, Metrics: port.Metrics{Counters: t.Counters}})
		}
		platforms[t.Platform] = platforms[t.Platform].Add(t.Counters)
		total = total.Add(t.Counters)
	}
	for i := range days {
		days[i].Derived = days[i].Counters.Derive()
	}

	byPlatform := make([]port.PlatformReport, 0, len(platforms))
	for p, c := range platforms {
		byPlatform = append(byPlatform, port.PlatformReport{Platform: p, Metrics: port.NewMetrics(c)})
	}
	slices.SortFunc(byPlatform, func(a, b port.PlatformReport) int { return cmp.Compare(a.Platform, b.Platform) })

	return &port.Report{
		From:      filter.From,
		To:        filter.To,
		Days:      days,
		Platforms: byPlatform,
		Total:     port.NewMetrics(total),
	}, nil
}

func (s *ReportService) Campaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	return s.campaigns.List(ctx, filter)
}

// Daily returns the series of one campaign. It fails with port.ErrNotFound
// for an unknown campaign rather than returning an empty series.
func (s *ReportService) Daily(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DailyMetric, error) {
	if _, err := s.campaigns.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.campaigns.ListDaily(ctx, campaignID, from, to)
}
