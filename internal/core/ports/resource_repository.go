package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ResourceRepository defines persistence for learning resources.
type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	FindByID(ctx context.Context, id int64) (*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id int64) error
	// ListByType returns resources of one category, newest first.
	ListByType(ctx context.Context, resourceType string) ([]*domain.Resource, error)
}
