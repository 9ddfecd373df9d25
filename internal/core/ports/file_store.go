package ports

import "io"

// FileStore persists uploaded files under randomized names.
type FileStore interface {
	// Save stores the content under a cryptographically random name that
	// preserves the original extension, and returns that name. Returns
	// domain.ErrFileNotAllowed when the extension is not on the allow-list.
	Save(filename string, r io.Reader) (stored string, err error)
	// Open returns the stored file for streaming. Returns domain.ErrFileNotFound
	// when the name is unknown.
	Open(stored string) (io.ReadSeekCloser, error)
	Remove(stored string) error
}
