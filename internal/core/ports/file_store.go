package ports

import (
	"context"
	"io"
)

// FileStore abstracts storage of uploaded prescription documents. The domain
// only tracks opaque references; the store decides layout and naming.
type FileStore interface {
	// Save writes the content under a new unique reference derived from the
	// original filename and returns that reference.
	Save(ctx context.Context, originalName string, content io.Reader) (ref string, err error)

	// Delete removes a previously stored file. Deleting a reference that no
	// longer exists is not an error.
	Delete(ctx context.Context, ref string) error
}
