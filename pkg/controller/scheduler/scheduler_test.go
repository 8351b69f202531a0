package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/controller/scheduler"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNext(t *testing.T) {
	s := gt.R1(scheduler.New(&mock.TriggerControllerMock{}, "")).NoError(t)

	t.Run("before the daily slot", func(t *testing.T) {
		next := s.Next(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		gt.V(t, next).Equal(time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC))
	})

	t.Run("after the daily slot", func(t *testing.T) {
		next := s.Next(time.Date(2024, 5, 1, 23, 45, 0, 0, time.UTC))
		gt.V(t, next).Equal(time.Date(2024, 5, 2, 23, 30, 0, 0, time.UTC))
	})

	t.Run("evaluated in UTC regardless of input zone", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		next := s.Next(time.Date(2024, 5, 2, 8, 0, 0, 0, jst))
		gt.V(t, next).Equal(time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC))
	})
}

func TestNewInvalidSpec(t *testing.T) {
	_, err := scheduler.New(&mock.TriggerControllerMock{}, "every day")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestTick(t *testing.T) {
	ctrl := &mock.TriggerControllerMock{
		AdmitFunc: func(ctx context.Context, trigger *model.Trigger) (types.RunID, error) {
			return types.NewRunID(), nil
		},
	}
	s := gt.R1(scheduler.New(ctrl, "*/5 * * * *")).NoError(t)
	s.Tick(context.Background())

	calls := ctrl.AdmitCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Trigger.Kind).Equal(types.TriggerSchedule)
}

func TestTickAdmitError(t *testing.T) {
	ctrl := &mock.TriggerControllerMock{
		AdmitFunc: func(ctx context.Context, trigger *model.Trigger) (types.RunID, error) {
			return "", types.ErrValidationFailed
		},
	}
	s := gt.R1(scheduler.New(ctrl, "")).NoError(t)
	s.Tick(context.Background())
	gt.A(t, ctrl.AdmitCalls()).Length(1)
}
