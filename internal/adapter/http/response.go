package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

const (
	callerHeader = "X-Account-Email"
	dateLayout   = "2006-01-02"
)

var errNoCaller = errors.New("missing " + callerHeader + " header")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response error", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps use-case errors onto status codes and logs unexpected ones.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// caller resolves the account named by the X-Account-Email header.
func (h *Handler) caller(r *http.Request) (*domain.Account, error) {
	email := strings.TrimSpace(r.Header.Get(callerHeader))
	if email == "" {
		return nil, errNoCaller
	}
	return h.accounts.FindByEmail(r.Context(), email)
}

// parseDay parses a 2006-01-02 query value; empty input yields the zero time.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
