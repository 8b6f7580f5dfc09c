package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/hisab/internal/adapter/http/dto"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/usecase"
)

// ReportCache memoizes rendered report bodies between requests and drops
// them when a business's transactions change.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte) error
	Invalidate(ctx context.Context, businessID string) error
}

// ReportHandler handles report-related HTTP requests.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	cache    ReportCache
	metrics  *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase, cache ReportCache, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		cache:    cache,
		metrics:  m,
	}
}

// PendingDues returns the outstanding member-pair debts of a business.
func (h *ReportHandler) PendingDues(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	h.metrics.ReportRequests.WithLabelValues("dues").Inc()

	if err := h.reportUC.Authorize(r.Context(), businessID, caller); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute dues", err.Error())

		return
	}

	key := businessID + ":dues"
	if body, err := h.cache.Get(r.Context(), key); err == nil && body != nil {
		h.metrics.ReportCacheHits.WithLabelValues("dues", "hit").Inc()
		writeCached(w, body)
		return
	}
	h.metrics.ReportCacheHits.WithLabelValues("dues", "miss").Inc()

	dues, err := h.reportUC.PendingDues(r.Context(), businessID, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute dues", err.Error())

		return
	}

	body, err := json.Marshal(dto.DuesFromDomain(dues))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode dues", err.Error())
		return
	}

	h.cache.Set(r.Context(), key, body)
	writeCached(w, body)
}

// MonthlySummary returns twelve income/expense buckets for a year.
func (h *ReportHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	year := parseIntQuery(r, "year", time.Now().UTC().Year())

	h.metrics.ReportRequests.WithLabelValues("summary").Inc()

	if err := h.reportUC.Authorize(r.Context(), businessID, caller); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute summary", err.Error())

		return
	}

	key := fmt.Sprintf("%s:summary:%d", businessID, year)
	if body, err := h.cache.Get(r.Context(), key); err == nil && body != nil {
		h.metrics.ReportCacheHits.WithLabelValues("summary", "hit").Inc()
		writeCached(w, body)
		return
	}
	h.metrics.ReportCacheHits.WithLabelValues("summary", "miss").Inc()

	months, err := h.reportUC.MonthlySummary(r.Context(), businessID, caller, year)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute summary", err.Error())

		return
	}

	body, err := json.Marshal(dto.MonthlySummaryFromDomain(months))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode summary", err.Error())
		return
	}

	h.cache.Set(r.Context(), key, body)
	writeCached(w, body)
}

// CheckConsistency compares cumulative settled amounts against the
// settlement records. Never cached, the point is a fresh answer.
func (h *ReportHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "missing business ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	h.metrics.ReportRequests.WithLabelValues("consistency").Inc()

	mismatches, err := h.reportUC.CheckConsistency(r.Context(), businessID, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to check consistency", err.Error())

		return
	}

	h.metrics.ReportMismatches.Set(float64(len(mismatches)))

	writeJSON(w, http.StatusOK, dto.ConsistencyFromDomain(mismatches))
}

// writeCached writes a previously rendered JSON body.
func writeCached(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
