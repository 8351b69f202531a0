package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Option func(*runRepository)

// WithCollectionPrefix lets several deployments share one database. The
// prefix is prepended to the slot and run collection names.
func WithCollectionPrefix(prefix string) Option {
	return func(r *runRepository) {
		r.slotCollection = prefix + collectionSlot
		r.runCollection = prefix + collectionRun
	}
}

// New creates a Firestore-backed RunRepository. An empty databaseID selects
// the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.RunRepository, error) {
	var (
		client *firestore.Client
		err    error
	)
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &runRepository{
		client:         client,
		slotCollection: collectionSlot,
		runCollection:  collectionRun,
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
