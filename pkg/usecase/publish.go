package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// PublishMessage returns the commit message of a publish at the given time
func PublishMessage(now time.Time) string {
	return "update at " + now.UTC().Format(time.RFC3339)
}

// Publish commits and force-pushes the output directory only when it has changes
func (x *UseCase) Publish(ctx context.Context, ws *Workspace, run *model.Run) (*model.PublishResult, error) {
	clean, err := ws.Output.IsClean(ctx)
	if err != nil {
		return nil, err
	}
	if clean {
		logging.From(ctx).Info("nothing new", slog.Any("base_commit", ws.BaseCommit))
		return &model.PublishResult{Changed: false, BaseCommit: ws.BaseCommit}, nil
	}

	if err := x.checkpoint(ctx, run); err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx).UTC()
	msg := PublishMessage(now)
	sha, err := ws.Output.CommitAll(ctx, &interfaces.CommitInput{
		Message:     msg,
		AuthorName:  x.authorName,
		AuthorEmail: x.authorEmail,
		When:        now,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to commit output directory")
	}

	if err := ws.Output.ForcePush(ctx, x.publishBranch); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("published",
		slog.Any("base_commit", ws.BaseCommit),
		slog.Any("new_commit", sha),
		slog.String("message", msg),
	)

	return &model.PublishResult{
		Changed:     true,
		BaseCommit:  ws.BaseCommit,
		NewCommit:   sha,
		Message:     msg,
		PublishedAt: now,
	}, nil
}
