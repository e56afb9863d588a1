package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ads-reconciler/internal/core/ingest"
	"ads-reconciler/internal/core/port"
)

// Config holds the upload settings of the HTTP adapter.
type Config struct {
	// UploadDir receives every uploaded file before it is processed.
	UploadDir string
	// MaxUploadBytes bounds the multipart body.
	MaxUploadBytes int64
	// Profile is used when an upload names none.
	Profile   string
	Overrides ingest.Overrides
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP:
// a thin layer over the import, report and scheduler use cases. Caller
// identity comes from the X-Account-Email header set by the upstream auth
// gateway.
type Handler struct {
	imports   port.ImportUseCase
	reports   port.ReportUseCase
	scheduler port.SchedulerController
	accounts  port.AccountRepository
	cfg       Config
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. scheduler may be
// nil when the directory scheduler is disabled.
func NewHandler(
	imports port.ImportUseCase,
	reports port.ReportUseCase,
	scheduler port.SchedulerController,
	accounts port.AccountRepository,
	cfg Config,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		imports:   imports,
		reports:   reports,
		scheduler: scheduler,
		accounts:  accounts,
		cfg:       cfg,
		logger:    logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/imports", h.handleUpload)
		r.Get("/imports", h.handleListImports)
		r.Get("/imports/{id}", h.handleGetImport)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}/daily", h.handleCampaignDaily)
		r.Get("/reports/summary", h.handleSummary)
		r.Get("/scheduler", h.handleSchedulerStatus)
		r.Post("/scheduler/trigger", h.handleSchedulerTrigger)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
