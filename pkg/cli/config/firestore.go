package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/repository/firestore"
	"github.com/m-mizutani/aptpages/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

// Firestore stores Runs and concurrency slots. Without a project ID they are
// kept in memory and exclusion only covers this process.
type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("APTPAGES_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("APTPAGES_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of the slot and run collections",
			Category:    "Firestore",
			Sources:     cli.EnvVars("APTPAGES_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collectionPrefix", x.collectionPrefix),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.RunRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID,
		firestore.WithCollectionPrefix(x.collectionPrefix),
	)
}
