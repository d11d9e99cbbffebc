package source

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/reldash/pkg/domain/interfaces"
	"github.com/m-mizutani/reldash/pkg/domain/types"
)

const gcsScheme = "gs://"

type opener struct {
	mu        sync.Mutex
	gcsClient *storage.Client
	newClient func(ctx context.Context) (*storage.Client, error)
}

// NewOpener creates a SourceOpener for local paths and gs://bucket/object locations.
// The Cloud Storage client is created on first use with application default credentials.
func NewOpener() interfaces.SourceOpener {
	return &opener{
		newClient: func(ctx context.Context) (*storage.Client, error) {
			return storage.NewClient(ctx)
		},
	}
}

// Open opens location for reading
func (o *opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, gcsScheme) {
		return o.openGCS(ctx, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open release CSV",
			goerr.T(types.ErrTagParse), goerr.V("path", location))
	}
	return f, nil
}

func (o *opener) openGCS(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, object, err := ParseGCSLocation(location)
	if err != nil {
		return nil, err
	}

	client, err := o.client(ctx)
	if err != nil {
		return nil, err
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read release CSV from Cloud Storage",
			goerr.T(types.ErrTagParse),
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}
	return r, nil
}

func (o *opener) client(ctx context.Context) (*storage.Client, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.gcsClient != nil {
		return o.gcsClient, nil
	}

	// The client outlives the request that created it
	client, err := o.newClient(context.WithoutCancel(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}
	o.gcsClient = client
	return client, nil
}

// ParseGCSLocation splits gs://bucket/path/to/object into bucket and object name
func ParseGCSLocation(location string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(location, gcsScheme)
	if !ok {
		return "", "", goerr.New("not a Cloud Storage location",
			goerr.T(types.ErrTagConfig), goerr.V("location", location))
	}

	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" || object == "" {
		return "", "", goerr.New("Cloud Storage location needs both bucket and object",
			goerr.T(types.ErrTagConfig), goerr.V("location", location))
	}
	return bucket, object, nil
}
