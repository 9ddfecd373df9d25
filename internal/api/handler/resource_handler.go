package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

type ResourceHandler struct {
	resourceService ports.ResourceService
}

func NewResourceHandler(resourceService ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

type resourceCatalogResponse struct {
	Videos   []*domain.Resource `json:"videos"`
	Books    []*domain.Resource `json:"books"`
	Websites []*domain.Resource `json:"websites"`
}

// List returns all learning resources grouped by category.
//
// @Summary      List learning resources
// @Tags         resources
// @Produce      json
// @Success      200  {object}  resourceCatalogResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	catalog, err := h.resourceService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resourceCatalogResponse{
		Videos:   catalog.Videos,
		Books:    catalog.Books,
		Websites: catalog.Websites,
	})
}

// Create adds a resource from a multipart form (fields + optional image).
//
// @Summary      Add a learning resource
// @Tags         resources
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Resource
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	in, closeImage, err := resourceInput(c)
	if err != nil {
		return err
	}
	defer closeImage()

	res, err := h.resourceService.Add(c.Request().Context(), ident, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Update edits a resource.
//
// @Summary      Update a learning resource
// @Tags         resources
// @Accept       mpfd
// @Produce      json
// @Param        id  path  int  true  "Resource id"
// @Success      200  {object}  okResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	in, closeImage, err := resourceInput(c)
	if err != nil {
		return err
	}
	defer closeImage()

	if err := h.resourceService.Update(c.Request().Context(), ident, id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// Delete removes a resource.
//
// @Summary      Delete a learning resource
// @Tags         resources
// @Produce      json
// @Param        id  path  int  true  "Resource id"
// @Success      200  {object}  okResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.resourceService.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

func resourceInput(c echo.Context) (ports.ResourceInput, func(), error) {
	noop := func() {}
	in := ports.ResourceInput{
		Type:        c.FormValue("resource_type"),
		Title:       c.FormValue("title"),
		URL:         c.FormValue("url"),
		Description: c.FormValue("description"),
		RemoveImage: c.FormValue("remove_image") == "true",
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return in, noop, nil
	}
	src, err := fh.Open()
	if err != nil {
		return in, noop, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	in.Image = &ports.Upload{Filename: fh.Filename, Content: src}
	return in, func() { _ = src.Close() }, nil
}
