package domain

import (
	"errors"
	"time"
)

var (
	ErrPostingNotFound = errors.New("job post not found")
	ErrPostingClosed   = errors.New("job post is closed")
	ErrForbidden       = errors.New("access forbidden")
)

// JobPosting is a company's job advertisement. OwnerEmail ties the posting to
// the company account that created it; only the owner may edit, toggle or
// delete it. IsOpen gates new applications but never invalidates existing ones.
type JobPosting struct {
	ID               int64     `json:"id"`
	Title            string    `json:"job_title"`
	Location         string    `json:"location"`
	EmploymentType   string    `json:"employment_type"`
	SalaryFrom       *int      `json:"salary_from"`
	SalaryTo         *int      `json:"salary_to"`
	Description      string    `json:"job_description"`
	Responsibilities string    `json:"key_responsibilities"`
	CompanyName      string    `json:"company_name"`
	OwnerEmail       string    `json:"email"`
	LogoFilename     string    `json:"logo_filename,omitempty"`
	IsOpen           bool      `json:"is_open"`
	CreatedAt        time.Time `json:"created_at"`
}
