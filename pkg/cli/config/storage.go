package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

// Storage is the optional snapshot bucket
type Storage struct {
	bucket string
	prefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for snapshots of the published tree",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("APTPAGES_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object prefix of snapshots",
			Category:    "Storage",
			Value:       "snapshots",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("APTPAGES_STORAGE_PREFIX"),
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

// NewClient returns nil when no bucket is configured
func (x *Storage) NewClient(ctx context.Context) (interfaces.SnapshotStore, error) {
	if !x.Enabled() {
		return nil, nil
	}

	client, err := gcs.New(ctx, x.bucket, x.prefix)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Bucket", x.bucket),
		slog.String("Prefix", x.prefix),
	)
}
