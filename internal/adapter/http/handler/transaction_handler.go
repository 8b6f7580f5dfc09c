package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/hisab/internal/adapter/http/dto"
	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/usecase"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC *usecase.TransactionUseCase
	cache         ReportCache
	metrics       *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC *usecase.TransactionUseCase, cache ReportCache, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		cache:         cache,
		metrics:       m,
	}
}

// Create creates a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionUC.CreateTransaction(r.Context(), req.ToUseCaseInput(businessID, caller))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create transaction", err.Error())

		return
	}

	h.metrics.TransactionsCreated.WithLabelValues(string(transaction.Type)).Inc()
	amount, _ := transaction.Amount.Float64()
	h.metrics.TransactionAmount.Observe(amount)
	h.cache.Invalidate(r.Context(), businessID)

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(transaction))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	transaction, err := h.transactionUC.GetTransaction(r.Context(), id, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(transaction))
}

// List lists transactions for a business with filters and pagination.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
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

	input := usecase.ListTransactionsInput{
		BusinessID:       businessID,
		CallerID:         caller,
		Type:             domain.TransactionType(r.URL.Query().Get("type")),
		CategoryID:       r.URL.Query().Get("category_id"),
		MemberID:         r.URL.Query().Get("member_id"),
		SettlementStatus: domain.SettlementStatus(r.URL.Query().Get("settlement_status")),
		Page:             parseIntQuery(r, "page", 1),
		Limit:            parseIntQuery(r, "limit", 20),
	}

	if start := r.URL.Query().Get("start_date"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start_date", err.Error())
			return
		}
		input.StartDate = &t
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date", err.Error())
			return
		}
		input.EndDate = &t
	}

	page, err := h.transactionUC.ListTransactions(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionPageFromUseCase(page))
}

// Update applies a partial update to a transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionUC.UpdateTransaction(r.Context(), req.ToUseCaseInput(id, caller))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update transaction", err.Error())

		return
	}

	h.cache.Invalidate(r.Context(), transaction.BusinessID)

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(transaction))
}

// Delete removes a transaction and its settlement records.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	caller, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	// Resolve the business before the row disappears, so the report cache
	// can be invalidated afterwards.
	transaction, err := h.transactionUC.GetTransaction(r.Context(), id, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete transaction", err.Error())

		return
	}

	if err := h.transactionUC.DeleteTransaction(r.Context(), id, caller); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete transaction", err.Error())

		return
	}

	h.metrics.TransactionsDeleted.Inc()
	h.cache.Invalidate(r.Context(), transaction.BusinessID)

	w.WriteHeader(http.StatusNoContent)
}
