package domain

import (
	"errors"
	"time"
)

// ApplicationState is the lifecycle state of an application. A record lives in
// exactly one state table at any time; Accepted and Rejected are terminal.
type ApplicationState string

const (
	StateActive   ApplicationState = "under_review"
	StateAccepted ApplicationState = "accepted"
	StateRejected ApplicationState = "rejected"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied for this job")
)

// Application is a seeker's interest in a posting. JobPostID is carried along
// when the record moves to a decision table so history survives posting
// renames; JobTitle is retained for legacy rows that predate the id column.
type Application struct {
	ID          int64     `json:"id"`
	SeekerName  string    `json:"seeker_name"`
	SeekerEmail string    `json:"seeker_email"`
	JobPostID   int64     `json:"job_post_id"`
	JobTitle    string    `json:"job_title"`
	AppliedAt   time.Time `json:"applied_at"`
}

// Terminal reports whether s is a decision state.
func (s ApplicationState) Terminal() bool {
	return s == StateAccepted || s == StateRejected
}
