package interfaces

import (
	"context"
	"io"
)

// SourceOpener opens the location of a release CSV export
type SourceOpener interface {
	// Open returns a reader for location. The caller closes it.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
