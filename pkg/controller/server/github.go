package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// validateGitHubEvent validates the signature of a webhook delivery and
// converts it into a trigger. It returns nil when the event requires no Run.
func validateGitHubEvent(r *http.Request, secret types.WebhookSecret, sourceRef string) (*model.Trigger, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub event",
		slog.String("type", github.WebHookType(r)),
		slog.String("delivery", github.DeliveryID(r)),
	)

	return githubEventToTrigger(event, sourceRef), nil
}

func githubEventToTrigger(event interface{}, sourceRef string) *model.Trigger {
	switch ev := event.(type) {
	case *github.PushEvent:
		if ev.GetRef() != sourceRef {
			logging.Default().Debug("ignore push to other ref", slog.String("ref", ev.GetRef()))
			return nil
		}
		if ev.GetDeleted() {
			logging.Default().Warn("ignore deletion of source branch", slog.String("ref", ev.GetRef()))
			return nil
		}

		triggeredBy := ev.GetPusher().GetName()
		if triggeredBy == "" {
			triggeredBy = ev.GetSender().GetLogin()
		}

		return &model.Trigger{
			Kind:        types.TriggerPush,
			Ref:         ev.GetRef(),
			TriggeredBy: triggeredBy,
			CommitID:    types.CommitSHA(ev.GetAfter()),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logging.Default().Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

// Test helpers - exported for testing
func GithubEventToTriggerForTest(event interface{}, sourceRef string) *model.Trigger {
	return githubEventToTrigger(event, sourceRef)
}
