package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ResourceInput carries the fields for creating or updating a resource.
type ResourceInput struct {
	Type        string
	Title       string
	URL         string
	Description string
	Image       *Upload
	RemoveImage bool
}

// ResourceCatalog groups resources by category for the listing page.
type ResourceCatalog struct {
	Videos   []*domain.Resource
	Books    []*domain.Resource
	Websites []*domain.Resource
}

type ResourceService interface {
	List(ctx context.Context) (*ResourceCatalog, error)
	Add(ctx context.Context, ident domain.Identity, in ResourceInput) (*domain.Resource, error)
	Update(ctx context.Context, ident domain.Identity, id int64, in ResourceInput) error
	Delete(ctx context.Context, ident domain.Identity, id int64) error
}
