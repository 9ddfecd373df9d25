package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type stubJobService struct {
	createFn   func(ctx context.Context, ident domain.Identity, in ports.PostingInput) (*domain.JobPosting, error)
	updateFn   func(ctx context.Context, ident domain.Identity, id int64, in ports.PostingInput) error
	deleteFn   func(ctx context.Context, ident domain.Identity, id int64) error
	toggleFn   func(ctx context.Context, ident domain.Identity, id int64, open bool) (bool, error)
	searchFn   func(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error)
	listMineFn func(ctx context.Context, ident domain.Identity) ([]*domain.JobPosting, error)
}

func (s *stubJobService) Create(ctx context.Context, ident domain.Identity, in ports.PostingInput) (*domain.JobPosting, error) {
	return s.createFn(ctx, ident, in)
}

func (s *stubJobService) Update(ctx context.Context, ident domain.Identity, id int64, in ports.PostingInput) error {
	return s.updateFn(ctx, ident, id, in)
}

func (s *stubJobService) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	return s.deleteFn(ctx, ident, id)
}

func (s *stubJobService) Toggle(ctx context.Context, ident domain.Identity, id int64, open bool) (bool, error) {
	return s.toggleFn(ctx, ident, id, open)
}

func (s *stubJobService) Search(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
	return s.searchFn(ctx, f)
}

func (s *stubJobService) ListMine(ctx context.Context, ident domain.Identity) ([]*domain.JobPosting, error) {
	return s.listMineFn(ctx, ident)
}

func multipartContext(t *testing.T, path string, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{UserID: 2, Role: domain.RoleCompany, Email: "hr@acme.com", Name: "Acme HR"})
	return c, rec
}

func TestJobHandler_Search_ParsesFilter(t *testing.T) {
	var got ports.SearchFilter
	stub := &stubJobService{
		searchFn: func(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
			got = f
			return []*domain.JobPosting{{ID: 1, Title: "Go Developer", IsOpen: true}}, nil
		},
	}
	h := NewJobHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/job_posts?q=go&employment_type=Full-time&salary_from=50000&salary_to=90000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Query != "go" || got.EmploymentType != "Full-time" {
		t.Fatalf("filter not parsed: %+v", got)
	}
	if got.SalaryFrom == nil || *got.SalaryFrom != 50000 || got.SalaryTo == nil || *got.SalaryTo != 90000 {
		t.Fatalf("salary bounds not parsed: %+v", got)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["job_title"] != "Go Developer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestJobHandler_Search_OmitsBlankSalaryBounds(t *testing.T) {
	var got ports.SearchFilter
	stub := &stubJobService{
		searchFn: func(ctx context.Context, f ports.SearchFilter) ([]*domain.JobPosting, error) {
			got = f
			return nil, nil
		},
	}
	h := NewJobHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/job_posts?salary_from=&salary_to=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.SalaryFrom != nil || got.SalaryTo != nil {
		t.Fatalf("blank bounds must stay nil: %+v", got)
	}
}

func TestJobHandler_Create_Multipart(t *testing.T) {
	var got ports.PostingInput
	stub := &stubJobService{
		createFn: func(ctx context.Context, ident domain.Identity, in ports.PostingInput) (*domain.JobPosting, error) {
			got = in
			return &domain.JobPosting{ID: 10, Title: in.Title, CompanyName: in.CompanyName, IsOpen: in.IsOpen}, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := multipartContext(t, "/api/job_posts", map[string]string{
		"job_title":       "Go Developer",
		"location":        "Riga",
		"employment_type": "Full-time",
		"job_description": "Build APIs",
		"company_name":    "Acme",
		"salary_from":     "50000",
	})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Title != "Go Developer" || got.SalaryFrom == nil || *got.SalaryFrom != 50000 {
		t.Fatalf("form not parsed: %+v", got)
	}
	if !got.IsOpen {
		t.Fatalf("posting should default to open")
	}
}

func TestJobHandler_Toggle(t *testing.T) {
	stub := &stubJobService{
		toggleFn: func(ctx context.Context, ident domain.Identity, id int64, open bool) (bool, error) {
			if id != 10 || open {
				t.Fatalf("unexpected toggle: id=%d open=%v", id, open)
			}
			return false, nil
		},
	}
	h := NewJobHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/job_post/10/toggle", `{"is_open":false}`)
	c.Set("identity", domain.Identity{UserID: 2, Role: domain.RoleCompany, Email: "hr@acme.com"})
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Toggle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["is_open"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestJobHandler_Delete_Forbidden(t *testing.T) {
	stub := &stubJobService{
		deleteFn: func(ctx context.Context, ident domain.Identity, id int64) error {
			return domain.ErrForbidden
		},
	}
	h := NewJobHandler(stub)

	c, _ := newJSONContext(http.MethodDelete, "/api/job_posts/10", "")
	c.Set("identity", domain.Identity{UserID: 2, Role: domain.RoleCompany, Email: "intruder@corp.com"})
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobHandler_InvalidID(t *testing.T) {
	h := NewJobHandler(&stubJobService{})

	c, _ := newJSONContext(http.MethodDelete, "/api/job_posts/abc", "")
	c.Set("identity", domain.Identity{UserID: 2, Role: domain.RoleCompany, Email: "hr@acme.com"})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
