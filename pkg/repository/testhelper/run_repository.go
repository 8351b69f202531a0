package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/repository"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for RunRepository
// This is the main entry point for testing any RunRepository implementation
func TestAll(t *testing.T, repo interfaces.RunRepository) {
	t.Run("RunCRUD", func(t *testing.T) {
		TestRunCRUD(t, repo)
	})
	t.Run("ListRuns", func(t *testing.T) {
		TestListRuns(t, repo)
	})
	t.Run("SlotLifecycle", func(t *testing.T) {
		TestSlotLifecycle(t, repo)
	})
	t.Run("SlotSupersede", func(t *testing.T) {
		TestSlotSupersede(t, repo)
	})
	t.Run("SlotExpire", func(t *testing.T) {
		TestSlotExpire(t, repo)
	})
}

func newGroupKey() types.GroupKey {
	return types.NewGroupKey(fmt.Sprintf("test-%s", uuid.New().String()[:8]), "refs/heads/main")
}

func ctxAt(now time.Time) context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return now })
}

// TestRunCRUD tests put and get of Run records
func TestRunCRUD(t *testing.T, repo interfaces.RunRepository) {
	ctx := context.Background()
	key := newGroupKey()
	now := time.Now().UTC().Truncate(time.Millisecond)

	run := model.NewRun(model.Trigger{Kind: types.TriggerManual, Ref: "refs/heads/main"}, key, now)
	gt.NoError(t, repo.PutRun(ctx, run))

	got, err := repo.GetRun(ctx, run.ID)
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(run.ID)
	gt.V(t, got.GroupKey).Equal(key)
	gt.V(t, got.State).Equal(types.RunStateStarted)
	gt.V(t, got.Trigger).Equal(types.TriggerManual)
	gt.True(t, got.StartedAt.Equal(now))

	gt.NoError(t, run.Transit(types.RunStatePrepared))
	run.BaseCommit = "1111111111111111111111111111111111111111"
	gt.NoError(t, repo.PutRun(ctx, run))

	got, err = repo.GetRun(ctx, run.ID)
	gt.NoError(t, err)
	gt.V(t, got.State).Equal(types.RunStatePrepared)
	gt.V(t, got.BaseCommit).Equal(run.BaseCommit)

	// Returned record must not alias the stored one
	got.State = types.RunStateFailed
	again, err := repo.GetRun(ctx, run.ID)
	gt.NoError(t, err)
	gt.V(t, again.State).Equal(types.RunStatePrepared)

	_, err = repo.GetRun(ctx, types.NewRunID())
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestListRuns tests that Runs of a group are listed newest first
func TestListRuns(t *testing.T, repo interfaces.RunRepository) {
	ctx := context.Background()
	key := newGroupKey()
	other := newGroupKey()
	base := time.Now().UTC().Truncate(time.Millisecond)

	var ids []types.RunID
	for i := 0; i < 3; i++ {
		run := model.NewRun(model.Trigger{Kind: types.TriggerSchedule}, key, base.Add(time.Duration(i)*time.Minute))
		gt.NoError(t, repo.PutRun(ctx, run))
		ids = append(ids, run.ID)
	}
	gt.NoError(t, repo.PutRun(ctx, model.NewRun(model.Trigger{Kind: types.TriggerPush}, other, base)))

	runs, err := repo.ListRuns(ctx, key, 10)
	gt.NoError(t, err)
	gt.A(t, runs).Length(3)
	gt.V(t, runs[0].ID).Equal(ids[2])
	gt.V(t, runs[2].ID).Equal(ids[0])

	runs, err = repo.ListRuns(ctx, key, 2)
	gt.NoError(t, err)
	gt.A(t, runs).Length(2)
	gt.V(t, runs[0].ID).Equal(ids[2])
}

// TestSlotLifecycle tests acquire, check and release by a single Run
func TestSlotLifecycle(t *testing.T, repo interfaces.RunRepository) {
	key := newGroupKey()
	now := time.Now().UTC().Truncate(time.Millisecond)
	ctx := ctxAt(now)
	runID := types.NewRunID()

	_, err := repo.GetSlot(ctx, key)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	slot, err := repo.AcquireSlot(ctx, &model.SlotRequest{
		GroupKey: key, RunID: runID, AdmittedAt: now, Now: now, TTL: time.Hour,
	})
	gt.NoError(t, err)
	gt.V(t, slot.Holder).Equal(runID)

	gt.NoError(t, repo.CheckSlot(ctx, key, runID))
	gt.True(t, errors.Is(repo.CheckSlot(ctx, key, types.NewRunID()), types.ErrRunSuperseded))

	gt.NoError(t, repo.ReleaseSlot(ctx, key, runID))
	stored, err := repo.GetSlot(ctx, key)
	gt.NoError(t, err)
	gt.V(t, stored.Holder).Equal(types.RunID(""))
	gt.True(t, errors.Is(repo.CheckSlot(ctx, key, runID), types.ErrRunSuperseded))

	// Releasing twice is harmless
	gt.NoError(t, repo.ReleaseSlot(ctx, key, runID))
	_, err = repo.AcquireSlot(ctx, &model.SlotRequest{GroupKey: key, RunID: runID, TTL: 0})
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

// TestSlotSupersede tests that a newer Run supersedes the holder and an older one is rejected
func TestSlotSupersede(t *testing.T, repo interfaces.RunRepository) {
	key := newGroupKey()
	base := time.Now().UTC().Truncate(time.Millisecond)
	first, second, third := types.NewRunID(), types.NewRunID(), types.NewRunID()

	_, err := repo.AcquireSlot(ctxAt(base), &model.SlotRequest{
		GroupKey: key, RunID: first, AdmittedAt: base, Now: base, TTL: time.Hour,
	})
	gt.NoError(t, err)

	t2 := base.Add(time.Second)
	slot, err := repo.AcquireSlot(ctxAt(t2), &model.SlotRequest{
		GroupKey: key, RunID: third, AdmittedAt: t2, Now: t2, TTL: time.Hour,
	})
	gt.True(t, errors.Is(err, types.ErrSlotBusy))
	gt.V(t, slot.Pending).Equal(third)

	// The holder observes supersession at its next checkpoint
	gt.True(t, errors.Is(repo.CheckSlot(ctxAt(t2), key, first), types.ErrRunSuperseded))

	// A Run admitted before the pending one can never take over
	t3 := base.Add(2 * time.Second)
	_, err = repo.AcquireSlot(ctxAt(t3), &model.SlotRequest{
		GroupKey: key, RunID: second, AdmittedAt: base.Add(500 * time.Millisecond), Now: t3, TTL: time.Hour,
	})
	gt.True(t, errors.Is(err, types.ErrRunSuperseded))

	gt.NoError(t, repo.ReleaseSlot(ctxAt(t3), key, first))

	slot, err = repo.AcquireSlot(ctxAt(t3), &model.SlotRequest{
		GroupKey: key, RunID: third, AdmittedAt: t2, Now: t3, TTL: time.Hour,
	})
	gt.NoError(t, err)
	gt.V(t, slot.Holder).Equal(third)
	gt.V(t, slot.Pending).Equal(types.RunID(""))
	gt.NoError(t, repo.CheckSlot(ctxAt(t3), key, third))
}

// TestSlotExpire tests that an expired lease can be taken over
func TestSlotExpire(t *testing.T, repo interfaces.RunRepository) {
	key := newGroupKey()
	base := time.Now().UTC().Truncate(time.Millisecond)
	stale, fresh := types.NewRunID(), types.NewRunID()

	_, err := repo.AcquireSlot(ctxAt(base), &model.SlotRequest{
		GroupKey: key, RunID: stale, AdmittedAt: base, Now: base, TTL: time.Minute,
	})
	gt.NoError(t, err)

	later := base.Add(time.Hour)
	slot, err := repo.AcquireSlot(ctxAt(later), &model.SlotRequest{
		GroupKey: key, RunID: fresh, AdmittedAt: later, Now: later, TTL: time.Minute,
	})
	gt.NoError(t, err)
	gt.V(t, slot.Holder).Equal(fresh)
	gt.True(t, errors.Is(repo.CheckSlot(ctxAt(later), key, stale), types.ErrRunSuperseded))
}
