package storage

import (
	"context"
	"io"
)

// FileStorage is the abstraction the dev server stores profile photos
// behind. Only a local-disk implementation exists; the interface keeps
// the handlers ignorant of where bytes land.
type FileStorage interface {
	// Upload writes the file under the given relative path and returns
	// the stored path.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// PublicURL returns the URL a client can fetch the stored path from.
	PublicURL(path string) string
}
