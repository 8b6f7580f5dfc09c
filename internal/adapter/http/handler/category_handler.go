package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/hisab/internal/adapter/http/dto"
	"github.com/iho/hisab/internal/usecase"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// Create creates a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.CreateCategory(r.Context(), req.ToUseCaseInput(businessID, caller))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create category", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// List lists the categories of a business.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
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

	categories, err := h.categoryUC.ListCategories(r.Context(), businessID, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list categories", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}

// Seed installs the default category set for a business. Categories that
// already exist by name are left alone.
func (h *CategoryHandler) Seed(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.categoryUC.SeedDefaults(r.Context(), businessID, caller)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to seed categories", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.SeedResponse{Created: created})
}
