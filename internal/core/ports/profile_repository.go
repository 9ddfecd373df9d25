package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ProfileRepository defines persistence for seeker and company profiles.
// Upserts create the row on first write (profiles are lazily created).
type ProfileRepository interface {
	FindSeekerByEmail(ctx context.Context, email string) (*domain.SeekerProfile, error)
	UpsertSeeker(ctx context.Context, p *domain.SeekerProfile) error
	FindCompanyByEmail(ctx context.Context, email string) (*domain.CompanyProfile, error)
	UpsertCompany(ctx context.Context, p *domain.CompanyProfile) error
}
