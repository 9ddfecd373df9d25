package ports

import (
	"context"
	"io"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// Upload is an incoming multipart file. Filename is the user-supplied name,
// used only to derive the extension.
type Upload struct {
	Filename string
	Content  io.Reader
}

// UpdateSeekerProfileInput carries a seeker profile edit. Empty fields keep
// their current values; Resume is optional.
type UpdateSeekerProfileInput struct {
	FullName   string
	Phone      string
	Education  string
	Experience string
	Skills     string
	Resume     *Upload
}

// UpdateCompanyProfileInput carries a company profile edit.
type UpdateCompanyProfileInput struct {
	ContactName string
	CompanyName string
	Phone       string
	Website     string
}

// SeekerProfileView is the profile as shown to its owner.
type SeekerProfileView struct {
	FullName   string
	Email      string
	Phone      string
	Education  string
	Experience string
	Skills     string
	HasResume  bool
}

// CompanyProfileView is the company profile plus derived counters.
type CompanyProfileView struct {
	Email       string
	ContactName string
	CompanyName string
	Phone       string
	Website     string
	JobsPosted  int
}

type ProfileService interface {
	SeekerProfile(ctx context.Context, ident domain.Identity) (*SeekerProfileView, error)
	CompanyProfile(ctx context.Context, ident domain.Identity) (*CompanyProfileView, error)
	UpdateSeeker(ctx context.Context, ident domain.Identity, in UpdateSeekerProfileInput) error
	UpdateCompany(ctx context.Context, ident domain.Identity, in UpdateCompanyProfileInput) error
	// OpenResume streams the stored resume for email. The filename returned is
	// the stored (randomized) name, usable as a download name.
	OpenResume(ctx context.Context, email string) (io.ReadSeekCloser, string, error)
}
