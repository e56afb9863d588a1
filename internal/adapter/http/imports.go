package httpadapter

import (
	"cmp"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ads-reconciler/internal/core/domain"
	"ads-reconciler/internal/core/port"
)

const defaultListLimit = 50

// handleUpload stores a multipart file under the upload directory, processes
// it synchronously as the caller and returns the batch summary. A batch-level
// failure is answered with 422 and the same summary body.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	acc, err := h.caller(r)
	switch {
	case errors.Is(err, errNoCaller), errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusUnauthorized, "unknown caller")
		return
	case err != nil:
		h.fail(w, "find caller", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing multipart field 'file'")
		return
	}
	defer file.Close()

	opts, err := h.cfg.Overrides.Resolve(cmp.Or(r.FormValue("profile"), h.cfg.Profile))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p := r.FormValue("platform"); p != "" {
		opts.PlatformHint = domain.NormalizePlatform(p)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	name := filepath.Base(hdr.Filename)
	stored, err := h.store(name, data)
	if err != nil {
		h.fail(w, "store upload", err)
		return
	}

	res, err := h.imports.Import(r.Context(), port.ImportRequest{
		Filename:  name,
		FilePath:  stored,
		Data:      data,
		Submitter: acc,
		Source:    domain.SourceUpload,
		Options:   opts,
	})
	if errors.Is(err, port.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.fail(w, "import", err)
		return
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (h *Handler) store(name string, data []byte) (string, error) {
	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(h.cfg.UploadDir, time.Now().Format("20060102_150405_")+name)
	return path, os.WriteFile(path, data, 0o644)
}

// handleListImports lists ledger records newest first. Optional filters:
// submitter (email), status and limit.
func (h *Handler) handleListImports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.BatchFilter{Limit: defaultListLimit}

	if email := q.Get("submitter"); email != "" {
		acc, err := h.accounts.FindByEmail(r.Context(), email)
		if errors.Is(err, port.ErrNotFound) {
			writeJSON(w, http.StatusOK, []batchResponse{})
			return
		}
		if err != nil {
			h.fail(w, "find submitter", err)
			return
		}
		filter.SubmittedBy = &acc.ID
	}
	if s := q.Get("status"); s != "" {
		filter.Status = domain.BatchStatus(s)
		if !filter.Status.Valid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
	}
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	batches, err := h.imports.ListBatches(r.Context(), filter)
	if err != nil {
		h.fail(w, "list imports", err)
		return
	}
	out := make([]batchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetImport(w http.ResponseWriter, r *http.Request) {
	b, err := h.imports.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get import", err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(*b))
}
