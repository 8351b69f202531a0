package server_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/aptpages/pkg/controller/server"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

const testSecret = "webhook-secret"

func webhookRequest(event string, body []byte, secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", "delivery-1")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func TestGitHubWebhook(t *testing.T) {
	runID := types.NewRunID()

	t.Run("push to source branch admits a run", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{}, server.WithWebhookSecret(testSecret))

		body := []byte(`{"ref":"refs/heads/main","after":"0123abcd","pusher":{"name":"octocat"}}`)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, webhookRequest("push", body, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.V(t, decodeBody(t, rec).RunID).Equal(runID.String())

		calls := ctrl.AdmitCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Trigger.Kind).Equal(types.TriggerPush)
		gt.V(t, calls[0].Trigger.Ref).Equal("refs/heads/main")
		gt.V(t, calls[0].Trigger.CommitID).Equal(types.CommitSHA("0123abcd"))
		gt.V(t, calls[0].Trigger.TriggeredBy).Equal("octocat")
	})

	t.Run("push to other branch requires no run", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{}, server.WithWebhookSecret(testSecret))

		body := []byte(`{"ref":"refs/heads/feature","after":"0123abcd"}`)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, webhookRequest("push", body, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeBody(t, rec).Message).Equal("no run required")
		gt.A(t, ctrl.AdmitCalls()).Length(0)
	})

	t.Run("source ref can be changed", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{},
			server.WithWebhookSecret(testSecret),
			server.WithSourceRef("refs/heads/release"),
		)

		body := []byte(`{"ref":"refs/heads/release","after":"0123abcd"}`)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, webhookRequest("push", body, testSecret))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)
	})

	t.Run("ping requires no run", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{}, server.WithWebhookSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, webhookRequest("ping", []byte(`{"zen":"Keep it simple."}`), testSecret))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, ctrl.AdmitCalls()).Length(0)
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		ctrl := admitOK(runID)
		srv := server.New(ctrl, &mock.UseCaseMock{}, server.WithWebhookSecret(testSecret))

		body := []byte(`{"ref":"refs/heads/main"}`)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, webhookRequest("push", body, "other-secret"))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, ctrl.AdmitCalls()).Length(0)
	})
}

func TestGitHubEventToTrigger(t *testing.T) {
	ref := "refs/heads/main"

	t.Run("push event", func(t *testing.T) {
		after := "abc123"
		login := "sender"
		trigger := server.GithubEventToTriggerForTest(&github.PushEvent{
			Ref:    &ref,
			After:  &after,
			Sender: &github.User{Login: &login},
		}, ref)
		gt.V(t, trigger.Kind).Equal(types.TriggerPush)
		gt.V(t, trigger.CommitID).Equal(types.CommitSHA(after))
		gt.V(t, trigger.TriggeredBy).Equal(login)
	})

	t.Run("deleted source branch", func(t *testing.T) {
		deleted := true
		trigger := server.GithubEventToTriggerForTest(&github.PushEvent{Ref: &ref, Deleted: &deleted}, ref)
		gt.True(t, trigger == nil)
	})

	t.Run("unsupported event", func(t *testing.T) {
		trigger := server.GithubEventToTriggerForTest(&github.StarEvent{}, ref)
		gt.True(t, trigger == nil)
	})
}
