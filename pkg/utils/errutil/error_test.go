package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/errutil"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func TestHandleError(t *testing.T) {
	ctx := logging.WithRunID(context.Background(), types.RunID("run-1"))

	t.Run("goerr with values", func(t *testing.T) {
		errutil.HandleError(ctx, "failed to save snapshot",
			goerr.Wrap(errors.New("boom"), "upload", goerr.V("bucket", "snapshots")))
	})

	t.Run("cancellation is not reported", func(t *testing.T) {
		errutil.HandleError(ctx, "run cancelled", goerr.Wrap(context.Canceled, "superseded"))
	})

	t.Run("nil error", func(t *testing.T) {
		errutil.HandleError(ctx, "nothing", nil)
	})
}
