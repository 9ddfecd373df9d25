package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Search lists open postings matching the query parameters.
//
// @Summary      Search job postings
// @Tags         jobs
// @Produce      json
// @Param        q                query     string  false  "Substring matched against title, company and location"
// @Param        employment_type  query     string  false  "Exact employment type"
// @Param        salary_from      query     int     false  "Minimum salary"
// @Param        salary_to        query     int     false  "Maximum salary"
// @Success      200  {array}   jobPostResponse
// @Router       /api/job_posts [get]
func (h *JobHandler) Search(c echo.Context) error {
	filter := ports.SearchFilter{
		Query:          c.QueryParam("q"),
		EmploymentType: strings.TrimSpace(c.QueryParam("employment_type")),
	}
	filter.SalaryFrom = intParam(c.QueryParam("salary_from"))
	filter.SalaryTo = intParam(c.QueryParam("salary_to"))

	postings, err := h.jobService.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobPostResponses(postings))
}

// ListMine lists the calling company's postings.
//
// @Summary      List own job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  jobPostResponse
// @Failure      401  {object} map[string]string
// @Router       /api/my_job_posts [get]
func (h *JobHandler) ListMine(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	postings, err := h.jobService.ListMine(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobPostResponses(postings))
}

// Create creates a posting from a multipart form (fields + optional logo).
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  jobPostResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/job_posts [post]
func (h *JobHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	in, closeLogo, err := postingInput(c)
	if err != nil {
		return err
	}
	defer closeLogo()

	posting, err := h.jobService.Create(c.Request().Context(), ident, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toJobPostResponse(posting))
}

// Update edits an owned posting.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       mpfd
// @Produce      json
// @Param        id  path  int  true  "Posting id"
// @Success      200  {object}  okResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/job_posts/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	in, closeLogo, err := postingInput(c)
	if err != nil {
		return err
	}
	defer closeLogo()

	if err := h.jobService.Update(c.Request().Context(), ident, id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// Delete removes an owned posting.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Posting id"
// @Success      200  {object}  okResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/job_posts/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.jobService.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// Toggle sets a posting's open flag. Idempotent.
//
// @Summary      Open or close a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  int            true  "Posting id"
// @Param        body  body  toggleRequest  true  "Desired state"
// @Success      200  {object}  toggleResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/job_post/{id}/toggle [post]
func (h *JobHandler) Toggle(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	open, err := h.jobService.Toggle(c.Request().Context(), ident, id, req.IsOpen)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleResponse{Success: true, IsOpen: open})
}

// postingInput reads the multipart form into a PostingInput. The returned
// closer releases the logo file handle, if any.
func postingInput(c echo.Context) (ports.PostingInput, func(), error) {
	noop := func() {}
	in := ports.PostingInput{
		Title:            c.FormValue("job_title"),
		Location:         c.FormValue("location"),
		EmploymentType:   c.FormValue("employment_type"),
		Description:      c.FormValue("job_description"),
		Responsibilities: c.FormValue("key_responsibilities"),
		CompanyName:      c.FormValue("company_name"),
		IsOpen:           c.FormValue("is_open") != "false",
		SalaryFrom:       intParam(c.FormValue("salary_from")),
		SalaryTo:         intParam(c.FormValue("salary_to")),
	}

	fh, err := c.FormFile("company_logo")
	if err != nil {
		// No logo in the form is fine.
		return in, noop, nil
	}
	src, err := fh.Open()
	if err != nil {
		return in, noop, echo.NewHTTPError(http.StatusBadRequest, "unreadable logo upload")
	}
	in.Logo = &ports.Upload{Filename: fh.Filename, Content: src}
	return in, func() { _ = src.Close() }, nil
}

func intParam(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
