package gcs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/aptpages/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const archiveSuffix = ".tar.gz"

// Client stores snapshots of the published tree in a Cloud Storage bucket
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.SnapshotStore = (*Client)(nil)

func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// ObjectName returns the object path of a snapshot generation
func ObjectName(prefix string, key types.GroupKey, generation string) string {
	return path.Join(prefix, key.String(), generation+archiveSuffix)
}

func (x *Client) groupPrefix(key types.GroupKey) string {
	return path.Join(x.prefix, key.String()) + "/"
}

func (x *Client) Put(ctx context.Context, key types.GroupKey, generation string, r io.Reader) error {
	name := ObjectName(x.prefix, key, generation)

	// cancelling the writer context aborts a partial upload
	uploadCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	w := x.client.Bucket(x.bucket).Object(name).NewWriter(uploadCtx)
	w.ContentType = "application/gzip"

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		safe.Close(w)
		return goerr.Wrap(err, "failed to upload snapshot", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finish snapshot upload", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	logging.From(ctx).Info("uploaded snapshot",
		slog.String("bucket", x.bucket),
		slog.String("object", name),
	)
	return nil
}

func (x *Client) Get(ctx context.Context, key types.GroupKey, generation string, w io.Writer) error {
	name := ObjectName(x.prefix, key, generation)
	r, err := x.client.Bucket(x.bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return goerr.Wrap(types.ErrNotFound, "snapshot not found", goerr.V("bucket", x.bucket), goerr.V("object", name))
		}
		return goerr.Wrap(err, "failed to open snapshot", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	defer safe.Close(r)

	if _, err := io.Copy(w, r); err != nil {
		return goerr.Wrap(err, "failed to download snapshot", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	return nil
}

// List returns snapshot generations of the group, newest first
func (x *Client) List(ctx context.Context, key types.GroupKey) ([]string, error) {
	prefix := x.groupPrefix(key)
	it := x.client.Bucket(x.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var generations []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list snapshots", goerr.V("bucket", x.bucket), goerr.V("prefix", prefix))
		}

		name := strings.TrimPrefix(attrs.Name, prefix)
		if strings.Contains(name, "/") || !strings.HasSuffix(name, archiveSuffix) {
			continue
		}
		generations = append(generations, strings.TrimSuffix(name, archiveSuffix))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(generations)))
	return generations, nil
}
