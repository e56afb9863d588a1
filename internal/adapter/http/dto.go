package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

type batchResponse struct {
	ID            string     `json:"id"`
	Filename      string     `json:"filename"`
	SubmittedBy   *int64     `json:"submitted_by,omitempty"`
	Source        string     `json:"source"`
	Profile       string     `json:"profile"`
	Status        string     `json:"status"`
	RowsProcessed int        `json:"rows_processed"`
	RowsFailed    int        `json:"rows_failed"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func toBatchResponse(b domain.ImportBatch) batchResponse {
	return batchResponse{
		ID:            b.ID,
		Filename:      b.Filename,
		SubmittedBy:   b.SubmittedBy,
		Source:        string(b.Source),
		Profile:       b.Profile,
		Status:        string(b.Status),
		RowsProcessed: b.RowsProcessed,
		RowsFailed:    b.RowsFailed,
		Error:         b.Error,
		CreatedAt:     b.CreatedAt,
		StartedAt:     b.StartedAt,
		CompletedAt:   b.CompletedAt,
	}
}

type metricsResponse struct {
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Spend       decimal.Decimal `json:"spend"`
	Reach       int64           `json:"reach"`
	CTR         float64         `json:"ctr"`
	CPC         float64         `json:"cpc"`
	CPM         float64         `json:"cpm"`
	CPV         float64         `json:"cpv"`
	CPA         float64         `json:"cpa"`
}

func toMetrics(c domain.Counters, d domain.Derived) metricsResponse {
	return metricsResponse{
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		Spend:       c.Spend,
		Reach:       c.Reach,
		CTR:         d.CTR,
		CPC:         d.CPC,
		CPM:         d.CPM,
		CPV:         d.CPV,
		CPA:         d.CPA,
	}
}

type campaignResponse struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"account_id"`
	Name            string          `json:"name"`
	Platform        string          `json:"platform"`
	Status          string          `json:"status"`
	Budget          decimal.Decimal `json:"budget"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	metricsResponse
	UpdatedAt time.Time `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		AccountID:       c.AccountID,
		Name:            c.Name,
		Platform:        string(c.Platform),
		Status:          c.Status,
		Budget:          c.Budget,
		RemainingBudget: c.RemainingBudget(),
		metricsResponse: toMetrics(c.Counters, c.Derived),
		UpdatedAt:       c.UpdatedAt,
	}
}

type dailyResponse struct {
	Date string `json:"date"`
	metricsResponse
}

type platformResponse struct {
	Platform string `json:"platform"`
	metricsResponse
}

type reportResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Days      []dailyResponse    `json:"days"`
	Platforms []platformResponse `json:"platforms"`
	Total     metricsResponse    `json:"total"`
}

func toReportResponse(r *port.Report) reportResponse {
	out := reportResponse{
		From:      r.From.Format(dateLayout),
		To:        r.To.Format(dateLayout),
		Days:      make([]dailyResponse, 0, len(r.Days)),
		Platforms: make([]platformResponse, 0, len(r.Platforms)),
		Total:     toMetrics(r.Total.Counters, r.Total.Derived),
	}
	for _, d := range r.Days {
		out.Days = append(out.Days, dailyResponse{Date: d.Date.Format(dateLayout), metricsResponse: toMetrics(d.Counters, d.Derived)})
	}
	for _, p := range r.Platforms {
		out.Platforms = append(out.Platforms, platformResponse{Platform: string(p.Platform), metricsResponse: toMetrics(p.Counters, p.Derived)})
	}
	return out
}
