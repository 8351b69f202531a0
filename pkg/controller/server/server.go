package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/errutil"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
)

// DefaultSourceRef is the ref whose pushes trigger a Run
const DefaultSourceRef = "refs/heads/main"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func safeWriteJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	RunID   types.RunID `json:"run_id,omitempty"`
}

type config struct {
	webhookSecret types.WebhookSecret
	dispatchToken types.DispatchToken
	sourceRef     string
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

// WithDispatchToken requires `Authorization: Bearer <token>` on POST /dispatch
func WithDispatchToken(token types.DispatchToken) Option {
	return func(cfg *config) {
		cfg.dispatchToken = token
	}
}

func WithSourceRef(ref string) Option {
	return func(cfg *config) {
		cfg.sourceRef = ref
	}
}

func New(ctrl interfaces.TriggerController, uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		sourceRef: DefaultSourceRef,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			trigger, err := validateGitHubEvent(r, cfg.webhookSecret, cfg.sourceRef)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to validate GitHub event", err)
				safeWriteJSON(w, http.StatusBadRequest, &response{Status: "error", Message: err.Error()})
				return
			}

			if trigger == nil {
				safeWriteJSON(w, http.StatusOK, &response{Status: "ok", Message: "no run required"})
				return
			}

			admit(w, r, ctrl, trigger)
		})
	})
	r.Post("/dispatch", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, cfg.dispatchToken) {
			safeWriteJSON(w, http.StatusUnauthorized, &response{Status: "error", Message: "unauthorized"})
			return
		}

		admit(w, r, ctrl, &model.Trigger{
			Kind:        types.TriggerManual,
			TriggeredBy: "dispatch",
		})
	})
	r.Get("/runs", func(w http.ResponseWriter, r *http.Request) {
		var limit int
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				safeWriteJSON(w, http.StatusBadRequest, &response{Status: "error", Message: "invalid limit"})
				return
			}
			limit = n
		}

		runs, err := uc.ListRuns(r.Context(), limit)
		if err != nil {
			if errors.Is(err, types.ErrValidationFailed) {
				safeWriteJSON(w, http.StatusBadRequest, &response{Status: "error", Message: err.Error()})
				return
			}
			errutil.HandleError(r.Context(), "fail to list runs", err)
			safeWriteJSON(w, http.StatusInternalServerError, &response{Status: "error", Message: "internal error"})
			return
		}
		if runs == nil {
			runs = []*model.Run{}
		}

		safeWriteJSON(w, http.StatusOK, runs)
	})
	r.Get("/runs/{id}", func(w http.ResponseWriter, r *http.Request) {
		runID := types.RunID(chi.URLParam(r, "id"))
		if err := runID.Validate(); err != nil {
			safeWriteJSON(w, http.StatusBadRequest, &response{Status: "error", Message: "invalid run ID"})
			return
		}

		run, err := uc.GetRun(r.Context(), runID)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				safeWriteJSON(w, http.StatusNotFound, &response{Status: "error", Message: "run not found"})
				return
			}
			errutil.HandleError(r.Context(), "fail to get run", err)
			safeWriteJSON(w, http.StatusInternalServerError, &response{Status: "error", Message: "internal error"})
			return
		}

		safeWriteJSON(w, http.StatusOK, run)
	})

	return &Server{
		mux: r,
	}
}

// admit hands the trigger to the controller. The Run continues after the
// response is sent.
func admit(w http.ResponseWriter, r *http.Request, ctrl interfaces.TriggerController, trigger *model.Trigger) {
	runID, err := ctrl.Admit(DetachContext(r.Context()), trigger)
	if err != nil {
		if errors.Is(err, types.ErrValidationFailed) {
			safeWriteJSON(w, http.StatusOK, &response{Status: "ok", Message: "no run required"})
			return
		}
		errutil.HandleError(r.Context(), "fail to admit trigger", err)
		safeWriteJSON(w, http.StatusInternalServerError, &response{Status: "error", Message: "fail to admit trigger"})
		return
	}

	safeWriteJSON(w, http.StatusAccepted, &response{Status: "accepted", RunID: runID})
}

func authorized(r *http.Request, token types.DispatchToken) bool {
	if token == "" {
		return true
	}

	given, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(token)) == 1
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
