package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

// FileHandler streams stored uploads. Resumes are reachable by the seeker who
// owns them and by company users reviewing applicants.
type FileHandler struct {
	profileService ports.ProfileService
}

func NewFileHandler(profileService ports.ProfileService) *FileHandler {
	return &FileHandler{profileService: profileService}
}

// ViewResume streams the resume stored for the given seeker email.
//
// @Summary      View a seeker's resume
// @Tags         files
// @Produce      octet-stream
// @Param        email  path  string  true  "Seeker email"
// @Success      200
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /view_resume/{email} [get]
func (h *FileHandler) ViewResume(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if !ident.IsCompany() && ident.Email != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	f, name, err := h.profileService.OpenResume(c.Request().Context(), email)
	if err != nil {
		return err
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, f)
}
