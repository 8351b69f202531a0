package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/repository"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Slot operations

func (r *runRepository) AcquireSlot(ctx context.Context, req *model.SlotRequest) (*model.Slot, error) {
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "invalid slot request", goerr.V("cause", err.Error()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.slots[req.GroupKey]
	if !exists {
		current = &model.Slot{GroupKey: req.GroupKey}
	}
	slot := copySlot(current)

	if err := slot.Acquire(req); err != nil {
		if errors.Is(err, types.ErrSlotBusy) {
			r.slots[req.GroupKey] = slot
		}
		return copySlot(slot), err
	}

	r.slots[req.GroupKey] = slot
	return copySlot(slot), nil
}

func (r *runRepository) CheckSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, exists := r.slots[key]
	if !exists {
		return goerr.Wrap(types.ErrRunSuperseded, "slot does not exist",
			goerr.V("group_key", key),
			goerr.V("run_id", runID),
		)
	}

	return slot.Check(runID, logging.CtxTime(ctx))
}

func (r *runRepository) ReleaseSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, exists := r.slots[key]
	if !exists {
		return nil
	}

	slot.Release(runID)
	slot.Withdraw(runID)
	return nil
}

func (r *runRepository) GetSlot(ctx context.Context, key types.GroupKey) (*model.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, exists := r.slots[key]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "slot not found", goerr.V("group_key", key))
	}

	return copySlot(slot), nil
}

// Run operations

func (r *runRepository) PutRun(ctx context.Context, run *model.Run) error {
	if run == nil || run.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "run ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.ID] = run.Copy()
	return nil
}

func (r *runRepository) GetRun(ctx context.Context, runID types.RunID) (*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[runID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "run not found", goerr.V("run_id", runID))
	}

	return run.Copy(), nil
}

func (r *runRepository) ListRuns(ctx context.Context, key types.GroupKey, limit int) ([]*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var runs []*model.Run
	for _, run := range r.runs {
		if run.GroupKey == key {
			runs = append(runs, run.Copy())
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func copySlot(slot *model.Slot) *model.Slot {
	if slot == nil {
		return nil
	}
	cpy := *slot
	return &cpy
}
