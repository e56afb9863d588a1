package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

// handleListCampaigns accepts optional account (email), platform and status
// filters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter port.CampaignFilter
	if email := q.Get("account"); email != "" {
		acc, err := h.accounts.FindByEmail(r.Context(), email)
		if errors.Is(err, port.ErrNotFound) {
			writeJSON(w, http.StatusOK, []campaignResponse{})
			return
		}
		if err != nil {
			h.fail(w, "find account", err)
			return
		}
		filter.AccountID = &acc.ID
	}
	if p := q.Get("platform"); p != "" {
		filter.Platform = domain.NormalizePlatform(p)
	}
	filter.Status = q.Get("status")

	campaigns, err := h.reports.Campaigns(r.Context(), filter)
	if err != nil {
		h.fail(w, "list campaigns", err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCampaignDaily returns the daily series of one campaign within the
// optional from/to range (2006-01-02).
func (h *Handler) handleCampaignDaily(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	from, err := parseDay(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'from' date")
		return
	}
	to, err := parseDay(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'to' date")
		return
	}

	series, err := h.reports.Daily(r.Context(), id, from, to)
	if err != nil {
		h.fail(w, "campaign daily", err)
		return
	}
	out := make([]dailyResponse, 0, len(series))
	for _, d := range series {
		out = append(out, dailyResponse{Date: d.Date.Format(dateLayout), metricsResponse: toMetrics(d.Counters, d.Counters.Derive())})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSummary returns the per-day, per-platform and total roll-up for one
// account (or all accounts when none is given). The range defaults to the
// last 30 days.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		filter port.ReportFilter
		err    error
	)
	if filter.From, err = parseDay(q.Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'from' date")
		return
	}
	if filter.To, err = parseDay(q.Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'to' date")
		return
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		writeError(w, http.StatusBadRequest, "'from' is after 'to'")
		return
	}
	if email := q.Get("account"); email != "" {
		acc, err := h.accounts.FindByEmail(r.Context(), email)
		if err != nil {
			h.fail(w, "find account", err)
			return
		}
		filter.AccountID = &acc.ID
	}

	report, err := h.reports.Summary(r.Context(), filter)
	if err != nil {
		h.fail(w, "summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}
