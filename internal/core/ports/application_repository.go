package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ApplicationSelector identifies an active application either by its row id or
// by the seeker's email. Exactly one field is expected to be set.
type ApplicationSelector struct {
	AppID int64
	Email string
}

// ApplicationRepository defines persistence for the three application state
// tables. Decide moves a record from Active into a terminal table; the insert
// and the delete happen inside one transaction so the record can never appear
// in two tables or vanish.
type ApplicationRepository interface {
	HasActive(ctx context.Context, seekerEmail string, jobPostID int64) (bool, error)
	InsertActive(ctx context.Context, app *domain.Application) (*domain.Application, error)
	// ActiveBySelector resolves sel among active applications on postings with
	// the given ids. Returns domain.ErrApplicationNotFound when nothing matches,
	// which also covers selectors pointing at another company's postings.
	ActiveBySelector(ctx context.Context, postingIDs []int64, sel ApplicationSelector) (*domain.Application, error)
	Decide(ctx context.Context, appID int64, state domain.ApplicationState) error
	// ListBySeeker returns the seeker's applications in the given state.
	ListBySeeker(ctx context.Context, seekerEmail string, state domain.ApplicationState) ([]*domain.Application, error)
	// ListActiveByPostings returns active applications on the given postings,
	// newest first.
	ListActiveByPostings(ctx context.Context, postingIDs []int64) ([]*domain.Application, error)
	// ListAcceptedByPostings returns accepted applications on the given
	// postings, newest first. Matches by posting id, falling back to a title
	// match for legacy rows that predate the id column — a known weak join.
	ListAcceptedByPostings(ctx context.Context, postingIDs []int64, titles []string) ([]*domain.Application, error)
}
