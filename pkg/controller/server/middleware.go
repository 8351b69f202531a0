package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
)

// RequestIDHeader carries the request ID back to the client
const RequestIDHeader = "X-Request-Id"

// requestID uses the webhook delivery GUID when GitHub sent the request so
// that logs can be matched with the delivery history of the webhook.
func requestID(r *http.Request) (types.RequestID, bool) {
	if id := r.Header.Get(github.DeliveryIDHeader); id != "" {
		return types.RequestID(id), true
	}
	return "", false
}

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id, ok := requestID(r); ok {
			ctx = logging.WithRequestID(ctx, id)
		}
		reqID, ctx := logging.CtxRequestID(ctx)

		logger := logging.Default().With(slog.Any("request_id", reqID))
		if event := github.WebHookType(r); event != "" {
			logger = logger.With(slog.String("github_event", event))
		}
		ctx = logging.With(ctx, logger)

		w.Header().Set(RequestIDHeader, string(reqID))
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
