package server

import (
	"context"

	"github.com/m-mizutani/aptpages/pkg/utils/logging"
)

// DetachContext returns a context for a Run admitted by a request. It keeps
// the request logger, request ID and clock but is not cancelled when the
// response has been sent.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
