package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type stubApplicationService struct {
	applyFn        func(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error)
	decideFn       func(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error
	seekerStatusFn func(ctx context.Context, ident domain.Identity, q ports.StatusQuery) (*ports.StatusResult, error)
	activeFn       func(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error)
	acceptedFn     func(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error) {
	return s.applyFn(ctx, ident, jobPostID)
}

func (s *stubApplicationService) Decide(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error {
	return s.decideFn(ctx, ident, sel, state)
}

func (s *stubApplicationService) SeekerStatus(ctx context.Context, ident domain.Identity, q ports.StatusQuery) (*ports.StatusResult, error) {
	return s.seekerStatusFn(ctx, ident, q)
}

func (s *stubApplicationService) ActiveForCompany(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error) {
	return s.activeFn(ctx, ident)
}

func (s *stubApplicationService) AcceptedForCompany(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error) {
	return s.acceptedFn(ctx, ident)
}

func seekerContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(method, path, body)
	c.Set("identity", domain.Identity{UserID: 1, Role: domain.RoleSeeker, Email: "seeker@example.com", Name: "Sam"})
	return c, rec
}

func companyContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(method, path, body)
	c.Set("identity", domain.Identity{UserID: 2, Role: domain.RoleCompany, Email: "hr@acme.com", Name: "Acme HR"})
	return c, rec
}

func TestApplicationHandler_Apply_JSON(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error) {
			if jobPostID != 10 {
				t.Fatalf("unexpected posting id: %d", jobPostID)
			}
			return &domain.Application{ID: 99, JobPostID: 10, JobTitle: "Go Developer"}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := seekerContext(http.MethodPost, "/apply/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "under_review" {
		t.Fatalf("unexpected status: %+v", resp)
	}
}

func TestApplicationHandler_Apply_BrowserRedirect(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error) {
			return &domain.Application{ID: 99, JobPostID: 10}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := seekerContext(http.MethodPost, "/apply/10", "")
	c.Request().Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestApplicationHandler_Apply_Duplicate(t *testing.T) {
	stub := &stubApplicationService{
		applyFn: func(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error) {
			return nil, domain.ErrDuplicateApplication
		},
	}
	h := NewApplicationHandler(stub)

	c, _ := seekerContext(http.MethodPost, "/apply/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Apply(c); !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplicationHandler_Accept_BySelector(t *testing.T) {
	var gotSel ports.ApplicationSelector
	var gotState domain.ApplicationState
	stub := &stubApplicationService{
		decideFn: func(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error {
			gotSel, gotState = sel, state
			return nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := companyContext(http.MethodPost, "/api/accept", `{"app_id":55}`)
	if err := h.Accept(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSel.AppID != 55 || gotState != domain.StateAccepted {
		t.Fatalf("unexpected call: sel=%+v state=%s", gotSel, gotState)
	}
}

func TestApplicationHandler_Reject_ByEmail(t *testing.T) {
	var gotSel ports.ApplicationSelector
	var gotState domain.ApplicationState
	stub := &stubApplicationService{
		decideFn: func(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error {
			gotSel, gotState = sel, state
			return nil
		},
	}
	h := NewApplicationHandler(stub)

	c, _ := companyContext(http.MethodPost, "/api/reject", `{"email":"seeker@example.com"}`)
	if err := h.Reject(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotSel.Email != "seeker@example.com" || gotState != domain.StateRejected {
		t.Fatalf("unexpected call: sel=%+v state=%s", gotSel, gotState)
	}
}

func TestApplicationHandler_Decide_RequiresSelector(t *testing.T) {
	stub := &stubApplicationService{
		decideFn: func(ctx context.Context, ident domain.Identity, sel ports.ApplicationSelector, state domain.ApplicationState) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewApplicationHandler(stub)

	c, _ := companyContext(http.MethodPost, "/api/accept", `{}`)
	err := h.Accept(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestApplicationHandler_SeekerStatus_ParsesQuery(t *testing.T) {
	var gotQuery ports.StatusQuery
	stub := &stubApplicationService{
		seekerStatusFn: func(ctx context.Context, ident domain.Identity, q ports.StatusQuery) (*ports.StatusResult, error) {
			gotQuery = q
			return &ports.StatusResult{
				Accepted:    []ports.StatusEntry{{JobTitle: "Go Developer", Status: "accepted"}},
				Rejected:    []ports.StatusEntry{},
				UnderReview: []ports.StatusEntry{},
			}, nil
		},
	}
	h := NewApplicationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/seeker_status?search=go&filters=accepted,rejected&sort=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{UserID: 1, Role: domain.RoleSeeker, Email: "seeker@example.com"})

	if err := h.SeekerStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotQuery.Search != "go" || !gotQuery.SortDesc {
		t.Fatalf("query not parsed: %+v", gotQuery)
	}
	if len(gotQuery.Filters) != 2 || gotQuery.Filters[0] != "accepted" || gotQuery.Filters[1] != "rejected" {
		t.Fatalf("filters not parsed: %v", gotQuery.Filters)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["under_review"]; !ok {
		t.Fatalf("missing under_review bucket: %+v", resp)
	}
}

func TestApplicationHandler_ActiveForCompany(t *testing.T) {
	stub := &stubApplicationService{
		activeFn: func(ctx context.Context, ident domain.Identity) ([]ports.CompanyApplicationView, error) {
			return []ports.CompanyApplicationView{
				{ID: 1, SeekerName: "Sam", SeekerEmail: "seeker@example.com", JobTitle: "Go Developer", HasResume: true},
			}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := companyContext(http.MethodGet, "/api/active_applications", "")
	if err := h.ActiveForCompany(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Sam" || resp[0]["has_resume"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
