package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/errutil"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
)

// DefaultSpec is the daily schedule (UTC)
const DefaultSpec = "30 23 * * *"

// Scheduler admits a schedule trigger on every tick of a cron expression
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	schedule cron.Schedule
	ctrl     interfaces.TriggerController
}

// New validates the cron expression. The schedule is evaluated in UTC.
func New(ctrl interfaces.TriggerController, spec string) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid schedule", goerr.V("spec", spec), goerr.V("cause", err.Error()))
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		spec:     spec,
		schedule: schedule,
		ctrl:     ctrl,
	}, nil
}

// Start registers the job and starts the cron runner. ctx carries the logger
// of admitted runs.
func (x *Scheduler) Start(ctx context.Context) {
	x.cron.Schedule(x.schedule, cron.FuncJob(func() { x.Tick(ctx) }))
	x.cron.Start()

	logging.From(ctx).Info("scheduler started",
		slog.String("spec", x.spec),
		slog.Time("next", x.Next(time.Now())),
	)
}

// Tick admits one schedule trigger
func (x *Scheduler) Tick(ctx context.Context) {
	runID, err := x.ctrl.Admit(ctx, &model.Trigger{Kind: types.TriggerSchedule, TriggeredBy: "cron"})
	if err != nil {
		errutil.HandleError(ctx, "failed to admit scheduled run", err)
		return
	}
	logging.From(ctx).Info("scheduled run admitted", slog.Any("run_id", runID))
}

// Stop stops the cron runner and waits for a running tick
func (x *Scheduler) Stop() {
	<-x.cron.Stop().Done()
}

// Next returns the next activation time after t
func (x *Scheduler) Next(t time.Time) time.Time {
	return x.schedule.Next(t.In(time.UTC))
}
