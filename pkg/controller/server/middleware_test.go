package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/controller/server"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestMiddleware(t *testing.T) {
	t.Run("request ID is set to context and response header", func(t *testing.T) {
		var capturedCtx context.Context
		srv := server.New(&mock.TriggerControllerMock{}, &mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, rec.Header().Get(server.RequestIDHeader)).Equal(string(reqID))
		gt.V(t, logging.From(capturedCtx) == logging.From(context.Background())).Equal(false)
	})

	t.Run("webhook delivery ID is used as request ID", func(t *testing.T) {
		var capturedCtx context.Context
		srv := server.New(&mock.TriggerControllerMock{}, &mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
		})

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		req.Header.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
		req.Header.Set("X-GitHub-Event", "push")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, reqID).Equal(types.RequestID("72d3162e-cc78-11e3-81ab-4c9367dc0958"))
		gt.V(t, rec.Header().Get(server.RequestIDHeader)).Equal("72d3162e-cc78-11e3-81ab-4c9367dc0958")
	})

	t.Run("status code is passed through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := server.New(&mock.TriggerControllerMock{}, &mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, rec.Code).Equal(code)
		}
	})

	t.Run("panic in handler is recovered", func(t *testing.T) {
		srv := server.New(&mock.TriggerControllerMock{}, &mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
