package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/errutil"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// NewRun admits a trigger and stores the Run in the started state
func (x *UseCase) NewRun(ctx context.Context, trigger *model.Trigger) (*model.Run, error) {
	if trigger.Ref == "" {
		trigger.Ref = x.SourceRef()
	}
	if err := trigger.Validate(); err != nil {
		return nil, err
	}
	if trigger.Kind == types.TriggerPush && trigger.Ref != x.SourceRef() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "push is not to the source branch",
			goerr.V("ref", trigger.Ref),
			goerr.V("source", x.SourceRef()),
		)
	}

	run := model.NewRun(*trigger, types.NewGroupKey(x.workflow, x.SourceRef()), logging.CtxTime(ctx))
	run.SourceCommit = trigger.CommitID
	if err := x.clients.RunRepository().PutRun(ctx, run); err != nil {
		return nil, goerr.Wrap(err, "failed to save new run", goerr.V("run_id", run.ID))
	}

	logging.From(ctx).Info("run admitted",
		slog.Any("run_id", run.ID),
		slog.Any("trigger", run.Trigger),
		slog.Any("group_key", run.GroupKey),
	)
	return run, nil
}

// GetRun returns a stored Run
func (x *UseCase) GetRun(ctx context.Context, runID types.RunID) (*model.Run, error) {
	if err := runID.Validate(); err != nil {
		return nil, err
	}

	run, err := x.clients.RunRepository().GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return run, nil
}

const (
	DefaultListRunsLimit = 20
	MaxListRunsLimit     = 100
)

// ListRuns returns recent Runs of the source branch group, newest first. A
// non-positive limit means DefaultListRunsLimit.
func (x *UseCase) ListRuns(ctx context.Context, limit int) ([]*model.Run, error) {
	if limit <= 0 {
		limit = DefaultListRunsLimit
	}
	if limit > MaxListRunsLimit {
		return nil, goerr.Wrap(types.ErrValidationFailed, "limit is too large",
			goerr.V("limit", limit),
			goerr.V("max", MaxListRunsLimit),
		)
	}

	key := types.NewGroupKey(x.workflow, x.SourceRef())
	runs, err := x.clients.RunRepository().ListRuns(ctx, key, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list runs", goerr.V("group_key", key))
	}
	return runs, nil
}

// ExecuteRun drives a Run from started to a terminal state. It returns nil
// when the Run is done (published or no-op) and an error when it failed or
// was cancelled.
func (x *UseCase) ExecuteRun(ctx context.Context, run *model.Run) error {
	if x.generator == nil {
		return goerr.Wrap(types.ErrInvalidOption, "index generator is not configured")
	}

	ctx = logging.WithAttrs(logging.WithRunID(ctx, run.ID),
		slog.Any("group_key", run.GroupKey),
	)
	repo := x.clients.RunRepository()

	defer func() {
		if err := repo.ReleaseSlot(context.WithoutCancel(ctx), run.GroupKey, run.ID); err != nil {
			errutil.HandleError(ctx, "failed to release slot", err)
		}
	}()

	result, ws, err := x.execute(ctx, run)
	if ws != nil {
		defer ws.Cleanup()
	}

	x.finish(ctx, run, result, err)

	if run.Outcome == types.RunOutcomePublished && ws != nil {
		x.saveSnapshot(ctx, run, ws, result)
	}
	x.recordHistory(ctx, run)

	return err
}

func (x *UseCase) execute(ctx context.Context, run *model.Run) (*model.PublishResult, *Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, goerr.Wrap(err, "run cancelled before start")
	}
	if err := x.acquireSlot(ctx, run); err != nil {
		return nil, nil, err
	}

	ws, err := x.Prepare(ctx, run)
	if err != nil {
		return nil, nil, err
	}
	if run.SourceCommit == "" {
		run.SourceCommit = ws.SourceCommit
	}
	run.BaseCommit = ws.BaseCommit

	if err := x.transit(ctx, run, types.RunStatePrepared); err != nil {
		return nil, ws, err
	}
	if err := x.checkpoint(ctx, run); err != nil {
		return nil, ws, err
	}

	credential, err := x.credential()
	if err != nil {
		return nil, ws, err
	}
	if err := x.generator.Generate(ctx, &model.GenerateInput{
		SourceDir:  ws.SourceDir,
		OutputDir:  ws.OutputDir,
		Credential: credential,
	}); err != nil {
		if ctx.Err() != nil {
			return nil, ws, goerr.Wrap(ctx.Err(), "run cancelled during index generation",
				goerr.V("generator_error", err.Error()),
			)
		}
		return nil, ws, types.ErrGenerator.Wrap(err)
	}

	if err := x.transit(ctx, run, types.RunStateGenerated); err != nil {
		return nil, ws, err
	}
	if err := x.checkpoint(ctx, run); err != nil {
		return nil, ws, err
	}

	result, err := x.Publish(ctx, ws, run)
	if err != nil {
		return nil, ws, err
	}

	if result.Changed {
		run.PublishedCommit = result.NewCommit
		if err := x.transit(ctx, run, types.RunStatePublished); err != nil {
			return result, ws, err
		}
	} else {
		if err := x.transit(ctx, run, types.RunStateNoOp); err != nil {
			return result, ws, err
		}
	}

	return result, ws, nil
}

func (x *UseCase) credential() (types.GitHubToken, error) {
	ts := x.clients.TokenSource()
	if ts == nil {
		return "", nil
	}
	token, err := ts.Token()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get GitHub token for generator")
	}
	return types.GitHubToken(token.AccessToken), nil
}

// acquireSlot waits until the Run holds the concurrency slot of its group
func (x *UseCase) acquireSlot(ctx context.Context, run *model.Run) error {
	repo := x.clients.RunRepository()

	for {
		_, err := repo.AcquireSlot(ctx, &model.SlotRequest{
			GroupKey:   run.GroupKey,
			RunID:      run.ID,
			AdmittedAt: run.StartedAt,
			Now:        logging.CtxTime(ctx),
			TTL:        x.slotTTL,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrSlotBusy) {
			return err
		}

		logging.From(ctx).Info("waiting for concurrency slot", slog.Duration("interval", x.pollInterval))
		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "cancelled while waiting for concurrency slot")
		case <-time.After(x.pollInterval):
		}
	}
}

// checkpoint stops the Run when it was cancelled or a newer Run superseded it
func (x *UseCase) checkpoint(ctx context.Context, run *model.Run) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "run cancelled", goerr.V("state", run.State))
	}
	if err := x.clients.RunRepository().CheckSlot(ctx, run.GroupKey, run.ID); err != nil {
		return goerr.Wrap(err, "run stopped at checkpoint", goerr.V("state", run.State))
	}
	return nil
}

func (x *UseCase) transit(ctx context.Context, run *model.Run, to types.RunState) error {
	if err := run.Transit(to); err != nil {
		return err
	}
	if err := x.clients.RunRepository().PutRun(ctx, run); err != nil {
		return goerr.Wrap(err, "failed to save run", goerr.V("state", to))
	}
	logging.From(ctx).Info("run state changed", slog.Any("state", to))
	return nil
}

// IsCancelled reports whether an error of ExecuteRun means the Run was
// cancelled rather than failed
func IsCancelled(err error) bool {
	return errors.Is(err, types.ErrRunSuperseded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (x *UseCase) finish(ctx context.Context, run *model.Run, result *model.PublishResult, cause error) {
	var outcome types.RunOutcome
	switch {
	case cause == nil && result != nil && result.Changed:
		outcome = types.RunOutcomePublished
	case cause == nil:
		outcome = types.RunOutcomeNoOp
	case IsCancelled(cause), ctx.Err() != nil:
		outcome = types.RunOutcomeCancelled
		logging.From(ctx).Info("run cancelled", slog.Any("reason", cause))
	default:
		outcome = types.RunOutcomeFailed
		errutil.HandleError(ctx, "run failed", cause)
	}

	// the caller's context may be cancelled already; the final record must still be stored
	saveCtx := context.WithoutCancel(ctx)
	if err := run.Finish(outcome, logging.CtxTime(ctx), cause); err != nil {
		errutil.HandleError(ctx, "failed to finish run", err)
		return
	}
	if err := x.clients.RunRepository().PutRun(saveCtx, run); err != nil {
		errutil.HandleError(ctx, "failed to save finished run", err)
	}

	logging.From(ctx).Info("run finished",
		slog.Any("outcome", run.Outcome),
		slog.Any("base_commit", run.BaseCommit),
		slog.Any("published_commit", run.PublishedCommit),
		slog.Duration("duration", run.FinishedAt.Sub(run.StartedAt)),
	)
}
