package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type seekerProfileResponse struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	HasResume  bool   `json:"has_resume"`
}

type companyProfileResponse struct {
	Email       string `json:"email"`
	ContactName string `json:"contact_name"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	JobsPosted  int    `json:"jobs_posted"`
}

// Get returns the caller's profile, shaped by role.
//
// @Summary      View own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  seekerProfileResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if ident.IsCompany() {
		view, err := h.profileService.CompanyProfile(ctx, ident)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, companyProfileResponse{
			Email:       view.Email,
			ContactName: view.ContactName,
			CompanyName: view.CompanyName,
			Phone:       view.Phone,
			Website:     view.Website,
			JobsPosted:  view.JobsPosted,
		})
	}

	view, err := h.profileService.SeekerProfile(ctx, ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seekerProfileResponse{
		FullName:   view.FullName,
		Email:      view.Email,
		Phone:      view.Phone,
		Education:  view.Education,
		Experience: view.Experience,
		Skills:     view.Skills,
		HasResume:  view.HasResume,
	})
}

// Update edits the caller's profile from a multipart form. Empty fields keep
// their current values; seekers may attach a resume file.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  okResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if ident.IsCompany() {
		in := ports.UpdateCompanyProfileInput{
			ContactName: c.FormValue("contact_name"),
			CompanyName: c.FormValue("company_name"),
			Phone:       c.FormValue("phone"),
			Website:     c.FormValue("website"),
		}
		if err := h.profileService.UpdateCompany(ctx, ident, in); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, okResponse{Success: true})
	}

	in := ports.UpdateSeekerProfileInput{
		FullName:   c.FormValue("full_name"),
		Phone:      c.FormValue("phone"),
		Education:  c.FormValue("education"),
		Experience: c.FormValue("experience"),
		Skills:     c.FormValue("skills"),
	}
	if fh, err := c.FormFile("resume"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable resume upload")
		}
		defer src.Close()
		in.Resume = &ports.Upload{Filename: fh.Filename, Content: src}
	}

	if err := h.profileService.UpdateSeeker(ctx, ident, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}
