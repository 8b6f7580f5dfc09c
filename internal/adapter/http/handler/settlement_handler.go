package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/hisab/internal/adapter/http/dto"
	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/usecase"
)

// SettlementHandler handles settlement-related HTTP requests.
type SettlementHandler struct {
	settlementUC *usecase.SettlementUseCase
	cache        ReportCache
	metrics      *metrics.Metrics
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC *usecase.SettlementUseCase, cache ReportCache, m *metrics.Metrics) *SettlementHandler {
	return &SettlementHandler{
		settlementUC: settlementUC,
		cache:        cache,
		metrics:      m,
	}
}

// Record applies a payment against a shared transaction.
func (h *SettlementHandler) Record(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.RecordSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.settlementUC.RecordSettlement(r.Context(), req.ToUseCaseInput(transactionID, caller))
	if err != nil {
		h.metrics.SettlementErrors.WithLabelValues(settlementErrorType(err)).Inc()
		status := mapDomainError(err)
		writeError(w, status, "failed to record settlement", err.Error())

		return
	}

	h.metrics.SettlementsRecorded.WithLabelValues(string(result.Type)).Inc()
	amount, _ := req.Amount.Float64()
	h.metrics.SettlementAmount.Observe(amount)
	h.cache.Invalidate(r.Context(), result.BusinessID)

	writeJSON(w, http.StatusCreated, dto.SettlementResultFromUseCase(result))
}

// List lists the settlement records of a transaction, newest first.
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	settlements, err := h.settlementUC.ListSettlements(r.Context(), transactionID, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list settlements", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementsFromDomain(settlements))
}

// settlementErrorType labels a settlement failure for metrics.
func settlementErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadySettled):
		return "already_settled"
	case errors.Is(err, domain.ErrSettlementNotRequired):
		return "not_applicable"
	case errors.Is(err, domain.ErrExceedsRemaining):
		return "exceeds_remaining"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
