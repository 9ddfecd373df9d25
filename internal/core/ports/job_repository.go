package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// SearchFilter carries the job search parameters. Query matches title,
// company name and location case-insensitively (OR semantics); nil salary
// bounds mean no filter, and a null bound on the row always passes.
type SearchFilter struct {
	Query          string
	EmploymentType string
	SalaryFrom     *int
	SalaryTo       *int
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, p *domain.JobPosting) (*domain.JobPosting, error)
	FindByID(ctx context.Context, id int64) (*domain.JobPosting, error)
	// FindByIDs returns the postings for the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*domain.JobPosting, error)
	FindByTitle(ctx context.Context, title string) (*domain.JobPosting, error)
	Update(ctx context.Context, p *domain.JobPosting) error
	Delete(ctx context.Context, id int64) error
	SetOpen(ctx context.Context, id int64, open bool) error
	Search(ctx context.Context, f SearchFilter) ([]*domain.JobPosting, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.JobPosting, error)
	IDsByOwner(ctx context.Context, ownerEmail string) ([]int64, error)
	CountByOwner(ctx context.Context, ownerEmail string) (int, error)
}
