package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/repository"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionSlot = "slot"
	collectionRun  = "run"
)

type runRepository struct {
	client         *firestore.Client
	slotCollection string
	runCollection  string
}

// ToSlotDocID converts a group key to a Firestore-safe document ID.
// Group keys contain "/" (e.g. "publish/refs/heads/main") but never ":"
// because Git ref names cannot contain it, so the replacement is reversible.
func ToSlotDocID(key types.GroupKey) (string, error) {
	if key == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "group key is empty")
	}
	if strings.Contains(key.String(), ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "group key contains invalid character ':'",
			goerr.V("group_key", key),
		)
	}
	return strings.ReplaceAll(key.String(), "/", ":"), nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Slot operations

func (r *runRepository) slotDoc(key types.GroupKey) (*firestore.DocumentRef, error) {
	docID, err := ToSlotDocID(key)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(r.slotCollection).Doc(docID), nil
}

func getSlotTx(tx *firestore.Transaction, docRef *firestore.DocumentRef) (*model.Slot, bool, error) {
	snap, err := tx.Get(docRef)
	if err != nil {
		if isNotFound(err) {
			return &model.Slot{}, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to get slot", goerr.V("doc", docRef.ID))
	}

	var slot model.Slot
	if err := snap.DataTo(&slot); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode slot", goerr.V("doc", docRef.ID))
	}
	return &slot, true, nil
}

func (r *runRepository) AcquireSlot(ctx context.Context, req *model.SlotRequest) (*model.Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid slot request", goerr.V("cause", err.Error()))
	}

	docRef, err := r.slotDoc(req.GroupKey)
	if err != nil {
		return nil, err
	}

	var result *model.Slot
	var acquireErr error
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		slot, _, err := getSlotTx(tx, docRef)
		if err != nil {
			return err
		}
		if slot.GroupKey == "" {
			slot.GroupKey = req.GroupKey
		}

		acquireErr = slot.Acquire(req)
		result = slot
		if acquireErr != nil && !errors.Is(acquireErr, types.ErrSlotBusy) {
			return nil
		}
		return tx.Set(docRef, slot)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to acquire slot", goerr.V("group_key", req.GroupKey))
	}

	return result, acquireErr
}

func (r *runRepository) CheckSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error {
	slot, err := r.GetSlot(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goerr.Wrap(types.ErrRunSuperseded, "slot does not exist",
				goerr.V("group_key", key),
				goerr.V("run_id", runID),
			)
		}
		return err
	}

	return slot.Check(runID, logging.CtxTime(ctx))
}

func (r *runRepository) ReleaseSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error {
	docRef, err := r.slotDoc(key)
	if err != nil {
		return err
	}

	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		slot, exists, err := getSlotTx(tx, docRef)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		released := slot.Release(runID)
		withdrawn := slot.Withdraw(runID)
		if !released && !withdrawn {
			return nil
		}
		return tx.Set(docRef, slot)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to release slot",
			goerr.V("group_key", key),
			goerr.V("run_id", runID),
		)
	}

	return nil
}

func (r *runRepository) GetSlot(ctx context.Context, key types.GroupKey) (*model.Slot, error) {
	docRef, err := r.slotDoc(key)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "slot not found", goerr.V("group_key", key))
		}
		return nil, goerr.Wrap(err, "failed to get slot", goerr.V("group_key", key))
	}

	var slot model.Slot
	if err := snap.DataTo(&slot); err != nil {
		return nil, goerr.Wrap(err, "failed to decode slot", goerr.V("group_key", key))
	}

	return &slot, nil
}

// Run operations

func (r *runRepository) PutRun(ctx context.Context, run *model.Run) error {
	if run == nil || run.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "run ID is empty")
	}

	if _, err := r.client.Collection(r.runCollection).Doc(run.ID.String()).Set(ctx, run); err != nil {
		return goerr.Wrap(err, "failed to put run", goerr.V("run_id", run.ID))
	}

	return nil
}

func (r *runRepository) GetRun(ctx context.Context, runID types.RunID) (*model.Run, error) {
	if runID == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "run ID is empty")
	}

	snap, err := r.client.Collection(r.runCollection).Doc(runID.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "run not found", goerr.V("run_id", runID))
		}
		return nil, goerr.Wrap(err, "failed to get run", goerr.V("run_id", runID))
	}

	var run model.Run
	if err := snap.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to decode run", goerr.V("run_id", runID))
	}

	return &run, nil
}

func (r *runRepository) ListRuns(ctx context.Context, key types.GroupKey, limit int) ([]*model.Run, error) {
	query := r.client.Collection(r.runCollection).
		Where("group_key", "==", key.String()).
		OrderBy("started_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var runs []*model.Run
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate runs", goerr.V("group_key", key))
		}

		var run model.Run
		if err := snap.DataTo(&run); err != nil {
			return nil, goerr.Wrap(err, "failed to decode run", goerr.V("doc", snap.Ref.ID))
		}
		runs = append(runs, &run)
	}

	return runs, nil
}
