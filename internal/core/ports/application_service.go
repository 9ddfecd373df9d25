package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// StatusQuery filters and orders the seeker's aggregated application history.
type StatusQuery struct {
	Search string
	// Filters restricts which state buckets are returned; empty means all.
	// Values: "accepted", "rejected", "under_review".
	Filters  []string
	SortDesc bool
}

// StatusEntry is one row of the seeker's dashboard, enriched with posting
// details where the posting still exists.
type StatusEntry struct {
	JobTitle         string
	CompanyName      string
	AppliedAt        string
	JobPostID        int64
	JobDescription   string
	Responsibilities string
	Status           string
}

// StatusResult groups the seeker's applications by state.
type StatusResult struct {
	Accepted    []StatusEntry
	Rejected    []StatusEntry
	UnderReview []StatusEntry
}

// CompanyApplicationView is an applicant row as shown to a company, enriched
// with the seeker's profile and resume reference.
type CompanyApplicationView struct {
	ID          int64
	SeekerName  string
	SeekerEmail string
	JobTitle    string
	AppliedAt   string
	JobPostID   int64
	CompanyName string
	Education   string
	Experience  string
	Skills      string
	HasResume   bool
}

type ApplicationService interface {
	// Apply submits an application for the posting. Fails with
	// domain.ErrDuplicateApplication, domain.ErrPostingNotFound or
	// domain.ErrPostingClosed.
	Apply(ctx context.Context, ident domain.Identity, jobPostID int64) (*domain.Application, error)
	// Decide accepts or rejects an active application on one of the calling
	// company's postings. state must be a terminal state.
	Decide(ctx context.Context, ident domain.Identity, sel ApplicationSelector, state domain.ApplicationState) error
	SeekerStatus(ctx context.Context, ident domain.Identity, q StatusQuery) (*StatusResult, error)
	ActiveForCompany(ctx context.Context, ident domain.Identity) ([]CompanyApplicationView, error)
	AcceptedForCompany(ctx context.Context, ident domain.Identity) ([]CompanyApplicationView, error)
}
