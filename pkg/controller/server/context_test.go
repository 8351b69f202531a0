package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/controller/server"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	t.Run("keeps logger, request ID and clock", func(t *testing.T) {
		logger := slog.Default().With("component", "test")
		ctx := logging.With(context.Background(), logger)
		reqID, ctx := logging.CtxRequestID(ctx)
		fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
		ctx = logging.CtxWithTime(ctx, func() time.Time { return fixedTime })

		detached := server.DetachContext(ctx)

		gt.V(t, logging.From(detached)).Equal(logger)
		inherited, _ := logging.CtxRequestID(detached)
		gt.V(t, inherited).Equal(reqID)
		gt.V(t, logging.CtxTime(detached)).Equal(fixedTime)
	})

	t.Run("is not cancelled with the request", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		detached := server.DetachContext(ctx)
		cancel()

		gt.V(t, ctx.Err()).Equal(context.Canceled)
		gt.NoError(t, detached.Err())
	})
}
