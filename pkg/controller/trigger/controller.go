package trigger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrShutdown    = goerr.New("trigger controller is shut down")
	ErrRunFailed   = goerr.New("run failed")
	ErrNotInFlight = goerr.New("run is not finished and not in flight in this process")
)

// Controller admits triggers and executes their Runs in the background.
// Within one process a new Run cancels the in-flight Run of the same
// concurrency group and starts only after it terminated.
type Controller struct {
	uc interfaces.UseCase

	mu       sync.Mutex
	closed   bool
	inflight map[types.GroupKey]*flight
	runs     map[types.RunID]*flight
	wg       sync.WaitGroup
}

type flight struct {
	runID  types.RunID
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

var _ interfaces.TriggerController = (*Controller)(nil)

func New(uc interfaces.UseCase) *Controller {
	return &Controller{
		uc:       uc,
		inflight: make(map[types.GroupKey]*flight),
		runs:     make(map[types.RunID]*flight),
	}
}

// Admit creates a Run for the trigger and schedules it. It returns as soon
// as the Run is stored.
func (x *Controller) Admit(ctx context.Context, trigger *model.Trigger) (types.RunID, error) {
	x.mu.Lock()
	closed := x.closed
	x.mu.Unlock()
	if closed {
		return "", ErrShutdown
	}

	run, err := x.uc.NewRun(ctx, trigger)
	if err != nil {
		return "", err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f := &flight{
		runID:  run.ID,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	x.mu.Lock()
	if x.closed {
		x.mu.Unlock()
		cancel()
		return "", ErrShutdown
	}
	prev := x.inflight[run.GroupKey]
	x.inflight[run.GroupKey] = f
	x.runs[run.ID] = f
	x.wg.Add(1)
	x.mu.Unlock()

	if prev != nil {
		logging.From(ctx).Info("cancel in-flight run of the same group",
			slog.Any("cancelled", prev.runID),
			slog.Any("run_id", run.ID),
		)
		prev.cancel()
	}

	go x.execute(runCtx, run, f, prev)

	return run.ID, nil
}

func (x *Controller) execute(ctx context.Context, run *model.Run, f *flight, prev *flight) {
	defer x.wg.Done()
	defer func() {
		x.mu.Lock()
		if x.inflight[run.GroupKey] == f {
			delete(x.inflight, run.GroupKey)
		}
		delete(x.runs, run.ID)
		x.mu.Unlock()
		close(f.done)
	}()
	defer f.cancel()

	if prev != nil {
		<-prev.done
	}

	// ExecuteRun also records a Run that was cancelled before it started
	f.err = x.uc.ExecuteRun(ctx, run)

	logger := logging.From(ctx).With(slog.Any("run_id", run.ID))
	switch {
	case f.err == nil:
		logger.Info("run completed")
	case usecase.IsCancelled(f.err):
		logger.Info("run cancelled")
	default:
		logger.Warn("run failed", slog.Any("error", f.err))
	}
}

// Wait blocks until the Run terminates and returns the error of its
// execution. A Run that is not in flight is looked up in the repository:
// published and no-op Runs return nil, failed Runs ErrRunFailed, cancelled
// Runs context.Canceled and unfinished Runs ErrNotInFlight.
func (x *Controller) Wait(ctx context.Context, runID types.RunID) error {
	x.mu.Lock()
	f, ok := x.runs[runID]
	x.mu.Unlock()
	if ok {
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "stopped waiting for run", goerr.V("run_id", runID))
		}
	}

	run, err := x.uc.GetRun(ctx, runID)
	if err != nil {
		return err
	}

	switch {
	case run.Outcome.Success():
		return nil
	case run.Outcome == types.RunOutcomeCancelled:
		return goerr.Wrap(context.Canceled, "run was cancelled", goerr.V("run_id", runID))
	case run.Outcome == types.RunOutcomeFailed:
		return goerr.Wrap(ErrRunFailed, run.Error, goerr.V("run_id", runID))
	default:
		return goerr.Wrap(ErrNotInFlight, "can not wait for run",
			goerr.V("run_id", runID),
			goerr.V("state", run.State),
		)
	}
}

// Shutdown stops admitting triggers and waits for in-flight Runs. When ctx
// expires first, the remaining Runs are cancelled and awaited.
func (x *Controller) Shutdown(ctx context.Context) error {
	x.mu.Lock()
	x.closed = true
	x.mu.Unlock()

	done := make(chan struct{})
	go func() {
		x.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
	}

	x.mu.Lock()
	for _, f := range x.runs {
		f.cancel()
	}
	x.mu.Unlock()
	<-done

	return goerr.Wrap(ctx.Err(), "in-flight runs were cancelled by shutdown")
}
