package httpadapter

import (
	"net/http"
)

func (h *Handler) handleSchedulerStatus(w http.ResponseWriter, _ *http.Request) {
	if h.scheduler == nil {
		writeError(w, http.StatusServiceUnavailable, "scheduler disabled")
		return
	}
	writeJSON(w, http.StatusOK, h.scheduler.Status())
}

// handleSchedulerTrigger runs a scan now and returns its report.
func (h *Handler) handleSchedulerTrigger(w http.ResponseWriter, r *http.Request) {
	if h.scheduler == nil {
		writeError(w, http.StatusServiceUnavailable, "scheduler disabled")
		return
	}
	report, err := h.scheduler.Trigger(r.Context())
	if err != nil {
		h.fail(w, "scheduler trigger", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
