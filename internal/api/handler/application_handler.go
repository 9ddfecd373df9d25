package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type ApplicationHandler struct {
	appService ports.ApplicationService
}

func NewApplicationHandler(appService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

type decideRequest struct {
	AppID int64  `json:"app_id"`
	Email string `json:"email"`
}

type applyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ID        int64  `json:"id"`
	JobPostID int64  `json:"job_post_id"`
	JobTitle  string `json:"job_title"`
	Status    string `json:"status"`
}

type statusEntry struct {
	JobTitle         string `json:"job_title"`
	CompanyName      string `json:"company_name"`
	AppliedAt        string `json:"applied_at"`
	JobPostID        int64  `json:"job_post_id,omitempty"`
	JobDescription   string `json:"job_description,omitempty"`
	Responsibilities string `json:"key_responsibilities,omitempty"`
	Status           string `json:"status"`
}

type statusResponse struct {
	Accepted    []statusEntry `json:"accepted"`
	Rejected    []statusEntry `json:"rejected"`
	UnderReview []statusEntry `json:"under_review"`
}

type companyApplication struct {
	ID          int64  `json:"id"`
	SeekerName  string `json:"name"`
	SeekerEmail string `json:"email"`
	JobTitle    string `json:"job_title"`
	AppliedAt   string `json:"applied_at"`
	JobPostID   int64  `json:"job_post_id,omitempty"`
	CompanyName string `json:"company_name"`
	Education   string `json:"education,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Skills      string `json:"skills,omitempty"`
	HasResume   bool   `json:"has_resume"`
}

// Apply submits an application for a posting. Browser form posts (Accept:
// text/html) get a 303 redirect back to the job list; API clients get JSON.
//
// @Summary      Apply to a job posting
// @Tags         applications
// @Produce      json
// @Param        id  path  int  true  "Posting id"
// @Success      201  {object}  applyResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /apply/{id} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	app, err := h.appService.Apply(c.Request().Context(), ident, id)
	if err != nil {
		return err
	}

	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, "/api/job_posts")
	}
	return c.JSON(http.StatusCreated, applyResponse{
		Success:   true,
		Message:   "application submitted",
		ID:        app.ID,
		JobPostID: app.JobPostID,
		JobTitle:  app.JobTitle,
		Status:    string(domain.StateActive),
	})
}

// Accept moves an active application on one of the caller's postings into the
// accepted table.
//
// @Summary      Accept an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  decideRequest  true  "app_id or email"
// @Success      200  {object}  okResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/accept [post]
func (h *ApplicationHandler) Accept(c echo.Context) error {
	return h.decide(c, domain.StateAccepted)
}

// Reject moves an active application on one of the caller's postings into the
// rejected table.
//
// @Summary      Reject an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  decideRequest  true  "app_id or email"
// @Success      200  {object}  okResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/reject [post]
func (h *ApplicationHandler) Reject(c echo.Context) error {
	return h.decide(c, domain.StateRejected)
}

func (h *ApplicationHandler) decide(c echo.Context, state domain.ApplicationState) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req decideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.AppID == 0 && strings.TrimSpace(req.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "app_id or email is required")
	}

	sel := ports.ApplicationSelector{AppID: req.AppID, Email: req.Email}
	if err := h.appService.Decide(c.Request().Context(), ident, sel, state); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// SeekerStatus returns the caller's applications grouped by state.
//
// @Summary      Application status dashboard
// @Tags         applications
// @Produce      json
// @Param        search   query  string  false  "Substring matched against title and company"
// @Param        filters  query  string  false  "Comma-separated states: accepted,rejected,under_review"
// @Param        sort     query  string  false  "asc (default) or desc by application date"
// @Success      200  {object}  statusResponse
// @Router       /api/seeker_status [get]
func (h *ApplicationHandler) SeekerStatus(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	q := ports.StatusQuery{
		Search:   c.QueryParam("search"),
		SortDesc: strings.EqualFold(c.QueryParam("sort"), "desc"),
	}
	if raw := strings.TrimSpace(c.QueryParam("filters")); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				q.Filters = append(q.Filters, f)
			}
		}
	}

	result, err := h.appService.SeekerStatus(c.Request().Context(), ident, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{
		Accepted:    toStatusEntries(result.Accepted),
		Rejected:    toStatusEntries(result.Rejected),
		UnderReview: toStatusEntries(result.UnderReview),
	})
}

// ActiveForCompany lists undecided applications on the caller's postings.
//
// @Summary      List active applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}  companyApplication
// @Router       /api/active_applications [get]
func (h *ApplicationHandler) ActiveForCompany(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.appService.ActiveForCompany(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyApplications(views))
}

// AcceptedForCompany lists accepted applications on the caller's postings.
//
// @Summary      List accepted applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}  companyApplication
// @Router       /api/accepted_applications [get]
func (h *ApplicationHandler) AcceptedForCompany(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.appService.AcceptedForCompany(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyApplications(views))
}

func toStatusEntries(entries []ports.StatusEntry) []statusEntry {
	out := make([]statusEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, statusEntry{
			JobTitle:         e.JobTitle,
			CompanyName:      e.CompanyName,
			AppliedAt:        e.AppliedAt,
			JobPostID:        e.JobPostID,
			JobDescription:   e.JobDescription,
			Responsibilities: e.Responsibilities,
			Status:           e.Status,
		})
	}
	return out
}

func toCompanyApplications(views []ports.CompanyApplicationView) []companyApplication {
	out := make([]companyApplication, 0, len(views))
	for _, v := range views {
		out = append(out, companyApplication{
			ID:          v.ID,
			SeekerName:  v.SeekerName,
			SeekerEmail: v.SeekerEmail,
			JobTitle:    v.JobTitle,
			AppliedAt:   v.AppliedAt,
			JobPostID:   v.JobPostID,
			CompanyName: v.CompanyName,
			Education:   v.Education,
			Experience:  v.Experience,
			Skills:      v.Skills,
			HasResume:   v.HasResume,
		})
	}
	return out
}

// wantsHTML reports whether the client prefers an HTML navigation response
// over JSON, i.e. a plain browser form post.
func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMETextHTML)
}
