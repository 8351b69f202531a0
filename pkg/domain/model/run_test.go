package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestTriggerValidate(t *testing.T) {
	t.Run("valid push trigger", func(t *testing.T) {
		trigger := &model.Trigger{Kind: types.TriggerPush, Ref: "refs/heads/main"}
		gt.NoError(t, trigger.Validate())
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		trigger := &model.Trigger{Kind: "webhook", Ref: "refs/heads/main"}
		gt.Error(t, trigger.Validate())
	})

	t.Run("empty ref fails", func(t *testing.T) {
		trigger := &model.Trigger{Kind: types.TriggerManual}
		gt.Error(t, trigger.Validate())
	})
}

func TestRunStateMachine(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	newRun := func() *model.Run {
		return model.NewRun(model.Trigger{Kind: types.TriggerSchedule, Ref: "refs/heads/main"}, "publish/refs/heads/main", now)
	}

	t.Run("published path reaches done", func(t *testing.T) {
		run := newRun()
		gt.V(t, run.State).Equal(types.RunStateStarted)
		gt.NoError(t, run.ID.Validate())

		gt.NoError(t, run.Transit(types.RunStatePrepared))
		gt.NoError(t, run.Transit(types.RunStateGenerated))
		gt.NoError(t, run.Transit(types.RunStatePublished))
		gt.NoError(t, run.Finish(types.RunOutcomePublished, now.Add(time.Minute), nil))

		gt.V(t, run.State).Equal(types.RunStateDone)
		gt.V(t, run.Outcome).Equal(types.RunOutcomePublished)
		gt.V(t, run.FinishedAt).Equal(now.Add(time.Minute))
	})

	t.Run("noop path reaches done", func(t *testing.T) {
		run := newRun()
		gt.NoError(t, run.Transit(types.RunStatePrepared))
		gt.NoError(t, run.Transit(types.RunStateGenerated))
		gt.NoError(t, run.Transit(types.RunStateNoOp))
		gt.NoError(t, run.Finish(types.RunOutcomeNoOp, now, nil))
		gt.True(t, run.Outcome.Success())
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		run := newRun()
		err := run.Transit(types.RunStateGenerated)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidStateTransition))
		gt.V(t, run.State).Equal(types.RunStateStarted)
	})

	t.Run("publishing before generation is rejected", func(t *testing.T) {
		run := newRun()
		gt.NoError(t, run.Transit(types.RunStatePrepared))
		gt.Error(t, run.Transit(types.RunStatePublished))
	})

	t.Run("failure is reachable from any non-terminal state", func(t *testing.T) {
		run := newRun()
		gt.NoError(t, run.Transit(types.RunStatePrepared))
		gt.NoError(t, run.Finish(types.RunOutcomeFailed, now, errors.New("generator exited with 1")))
		gt.V(t, run.State).Equal(types.RunStateFailed)
		gt.V(t, run.Error).Equal("generator exited with 1")
		gt.False(t, run.Outcome.Success())
	})

	t.Run("terminal state can not move", func(t *testing.T) {
		run := newRun()
		gt.NoError(t, run.Finish(types.RunOutcomeCancelled, now, nil))
		gt.Error(t, run.Transit(types.RunStatePrepared))
		gt.Error(t, run.Finish(types.RunOutcomeFailed, now, nil))
	})
}

func TestNewRunRecord(t *testing.T) {
	startedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	run := model.NewRun(model.Trigger{Kind: types.TriggerPush, Ref: "refs/heads/main", TriggeredBy: "octocat"}, "publish/refs/heads/main", startedAt)
	run.SourceCommit = "1111111111111111111111111111111111111111"
	gt.NoError(t, run.Transit(types.RunStatePrepared))
	gt.NoError(t, run.Transit(types.RunStateGenerated))
	gt.NoError(t, run.Transit(types.RunStateNoOp))
	gt.NoError(t, run.Finish(types.RunOutcomeNoOp, startedAt.Add(1500*time.Millisecond), nil))

	record := model.NewRunRecord(run)
	gt.V(t, record.ID).Equal(run.ID.String())
	gt.V(t, record.Trigger).Equal("push")
	gt.V(t, record.TriggeredBy).Equal("octocat")
	gt.V(t, record.Outcome).Equal("noop")
	gt.V(t, record.DurationMS).Equal(int64(1500))
}
