package domain

import (
	"errors"
	"time"
)

var ErrResourceNotFound = errors.New("resource not found")

const (
	ResourceVideo   = "Video"
	ResourceBook    = "Book"
	ResourceWebsite = "Website"
)

// Resource is a company-curated learning material.
type Resource struct {
	ID          int64     `json:"id"`
	Type        string    `json:"resource_type"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidResourceType reports whether t is a known resource category.
func ValidResourceType(t string) bool {
	return t == ResourceVideo || t == ResourceBook || t == ResourceWebsite
}
