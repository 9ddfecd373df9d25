package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// SeekerProfile extends a seeker account with bio data. Created lazily on the
// first bio submission or profile edit. UserID is the owning account; Email is
// kept as a lookup convenience index.
type SeekerProfile struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	ResumePath string `json:"resume_path,omitempty"` // stored filename, empty when no upload
}

// CompanyProfile extends a company account. Created lazily on first edit.
type CompanyProfile struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	ContactName string `json:"contact_name"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
}
