package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/hisab/internal/adapter/http/dto"
	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/usecase"
	"github.com/iho/hisab/internal/usecase/mocks"
)

func newCategoryHandler(t *testing.T) *CategoryHandler {
	t.Helper()

	memberships := mocks.NewMockMembershipRepository()
	memberships.Grant("biz-1", "alice", domain.RoleOwner)
	memberships.Grant("biz-1", "bob", domain.RoleMember)

	uc := usecase.NewCategoryUseCase(
		mocks.NewMockCategoryRepository(),
		usecase.NewAccessGate(memberships),
		mocks.NewMockIDGenerator("cat"),
	)

	return NewCategoryHandler(uc)
}

func TestCategoryHandler_Create(t *testing.T) {
	handler := newCategoryHandler(t)

	body, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Books", Kind: "expense", Icon: "📚"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/categories", bytes.NewReader(body))
	req = setChiURLParam(req, "businessId", "biz-1")
	req = asUser(req, "alice")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Books" || resp.Kind != "expense" {
		t.Fatalf("unexpected category: %+v", resp)
	}
}

func TestCategoryHandler_Create_MemberForbidden(t *testing.T) {
	handler := newCategoryHandler(t)

	body, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Books"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/categories", bytes.NewReader(body))
	req = setChiURLParam(req, "businessId", "biz-1")
	req = asUser(req, "bob")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create_BlankName(t *testing.T) {
	handler := newCategoryHandler(t)

	body, _ := json.Marshal(dto.CreateCategoryRequest{Name: "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/categories", bytes.NewReader(body))
	req = setChiURLParam(req, "businessId", "biz-1")
	req = asUser(req, "alice")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCategoryHandler_SeedThenList(t *testing.T) {
	handler := newCategoryHandler(t)

	seedReq := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/categories/seed", nil)
	seedReq = setChiURLParam(seedReq, "businessId", "biz-1")
	seedReq = asUser(seedReq, "alice")
	seedRec := httptest.NewRecorder()

	handler.Seed(seedRec, seedReq)

	if seedRec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", seedRec.Code, seedRec.Body.String())
	}

	var seeded dto.SeedResponse
	if err := json.Unmarshal(seedRec.Body.Bytes(), &seeded); err != nil {
		t.Fatalf("failed to decode seed response: %v", err)
	}
	if seeded.Created == 0 {
		t.Fatal("expected default categories to be created")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/categories", nil)
	listReq = setChiURLParam(listReq, "businessId", "biz-1")
	listReq = asUser(listReq, "bob")
	listRec := httptest.NewRecorder()

	handler.List(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listRec.Code)
	}

	var categories []*dto.CategoryResponse
	if err := json.Unmarshal(listRec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(categories) != seeded.Created {
		t.Fatalf("expected %d categories, got %d", seeded.Created, len(categories))
	}
}
