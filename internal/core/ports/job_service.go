package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// PostingInput carries the fields for creating or updating a posting.
type PostingInput struct {
	Title            string
	Location         string
	EmploymentType   string
	SalaryFrom       *int
	SalaryTo         *int
	Description      string
	Responsibilities string
	CompanyName      string
	IsOpen           bool
	Logo             *Upload
}

type JobService interface {
	Create(ctx context.Context, ident domain.Identity, in PostingInput) (*domain.JobPosting, error)
	Update(ctx context.Context, ident domain.Identity, id int64, in PostingInput) error
	Delete(ctx context.Context, ident domain.Identity, id int64) error
	// Toggle sets the open flag to the desired state. Idempotent; returns the
	// resulting state.
	Toggle(ctx context.Context, ident domain.Identity, id int64, open bool) (bool, error)
	Search(ctx context.Context, f SearchFilter) ([]*domain.JobPosting, error)
	ListMine(ctx context.Context, ident domain.Identity) ([]*domain.JobPosting, error)
}
