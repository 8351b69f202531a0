package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/controller/server"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/repository/memory"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type responseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	RunID   string `json:"run_id"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) *responseBody {
	var body responseBody
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return &body
}

func admitOK(runID types.RunID) *mock.TriggerControllerMock {
	return &mock.TriggerControllerMock{
		AdmitFunc: func(ctx context.Context, trigger *model.Trigger) (types.RunID, error) {
			return runID, nil
		},
	}
}

func TestHealth(t *testing.T) {
	srv := server.New(&mock.TriggerControllerMock{}, &mock.UseCaseMock{})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestDispatch(t *testing.T) {
	runID := types.NewRunID()

	t.Run("admits manual trigger without token", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dispatch", nil))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.V(t, decodeBody(t, rec).RunID).Equal(runID.String())
		gt.A(t, ctrl.AdmitCalls()).Length(1)
		gt.V(t, ctrl.AdmitCalls()[0].Trigger.Kind).Equal(types.TriggerManual)
	})

	t.Run("token is required when configured", func(t *testing.T) {
		testCases := map[string]struct {
			header string
			code   int
		}{
			"missing": {header: "", code: http.StatusUnauthorized},
			"wrong":   {header: "Bearer nope", code: http.StatusUnauthorized},
			"scheme":  {header: "Basic s3cret", code: http.StatusUnauthorized},
			"valid":   {header: "Bearer s3cret", code: http.StatusAccepted},
		}

		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				ctrl := admitOK(runID)
				srv := server.New(ctrl, &mock.UseCaseMock{}, server.WithDispatchToken("s3cret"))

				req := httptest.NewRequest(http.MethodPost, "/dispatch", nil)
				if tc.header != "" {
					req.Header.Set("Authorization", tc.header)
				}
				rec := httptest.NewRecorder()
				srv.Mux().ServeHTTP(rec, req)

				gt.V(t, rec.Code).Equal(tc.code)
				if tc.code != http.StatusAccepted {
					gt.A(t, ctrl.AdmitCalls()).Length(0)
				}
			})
		}
	})

	t.Run("admission failure", func(t *testing.T) {
		ctrl := &mock.TriggerControllerMock{
			AdmitFunc: func(ctx context.Context, trigger *model.Trigger) (types.RunID, error) {
				return "", errors.New("repository down")
			},
		}
		srv := server.New(ctrl, &mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dispatch", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestGetRun(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithRunRepository(repo)))
	run := model.NewRun(model.Trigger{Kind: types.TriggerManual}, "publish/refs/heads/main", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	gt.NoError(t, repo.PutRun(ctx, run))
	srv := server.New(&mock.TriggerControllerMock{}, uc)

	t.Run("stored run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/"+run.ID.String(), nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var got model.Run
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.V(t, got.ID).Equal(run.ID)
		gt.V(t, got.State).Equal(types.RunStateStarted)
		gt.V(t, got.GroupKey).Equal(run.GroupKey)
	})

	t.Run("unknown run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/"+types.NewRunID().String(), nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("invalid run ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/xyz", nil))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestListRuns(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithRunRepository(repo)))
	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var ids []types.RunID
	for i := 0; i < 3; i++ {
		run := model.NewRun(model.Trigger{Kind: types.TriggerManual}, "publish/refs/heads/main", base.Add(time.Duration(i)*time.Minute))
		gt.NoError(t, repo.PutRun(ctx, run))
		ids = append(ids, run.ID)
	}
	other := model.NewRun(model.Trigger{Kind: types.TriggerManual}, "publish/refs/heads/dev", base)
	gt.NoError(t, repo.PutRun(ctx, other))

	srv := server.New(&mock.TriggerControllerMock{}, uc)

	t.Run("newest first within the source group", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var got []model.Run
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.A(t, got).Length(3)
		gt.V(t, got[0].ID).Equal(ids[2])
		gt.V(t, got[2].ID).Equal(ids[0])
	})

	t.Run("limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs?limit=1", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var got []model.Run
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.A(t, got).Length(1)
		gt.V(t, got[0].ID).Equal(ids[2])
	})

	t.Run("invalid limit", func(t *testing.T) {
		for _, q := range []string{"abc", "0", "1000"} {
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs?limit="+q, nil))
			gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		}
	})

	t.Run("empty group returns an empty list", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithRunRepository(memory.New())))
		srv := server.New(&mock.TriggerControllerMock{}, uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("[]")
	})
}
