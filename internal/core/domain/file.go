package domain

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFileNotAllowed  = errors.New("file type not allowed")
)
