package trigger_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/controller/trigger"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/repository/memory"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/aptpages/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestAdmitSupersedesExecutingRun(t *testing.T) {
	const branch = "gh-pages"
	remote := testutil.NewRemoteRepo(t, branch, map[string]string{"index.json": "A"})
	base := remote.Tip(t, branch)

	generating := make(chan struct{})
	var calls atomic.Int32
	gen := &mock.GeneratorMock{
		GenerateFunc: func(ctx context.Context, input *model.GenerateInput) error {
			path := filepath.Join(input.OutputDir, "index.json")
			if calls.Add(1) == 1 {
				if err := os.WriteFile(path, []byte("half"), 0644); err != nil {
					return err
				}
				close(generating)
				<-ctx.Done()
				// an external generator killed by the cancellation
				return errors.New("signal: killed")
			}
			return os.WriteFile(path, []byte("B"), 0644)
		},
	}

	repo := memory.New()
	uc := usecase.New(infra.New(infra.WithRunRepository(repo)),
		usecase.WithGenerator(gen),
		usecase.WithRemoteURL(remote.Dir),
		usecase.WithSourceDir(t.TempDir()),
		usecase.WithPollInterval(10*time.Millisecond),
	)
	ctrl := trigger.New(uc)
	ctx := context.Background()

	first := gt.R1(ctrl.Admit(ctx, &model.Trigger{Kind: types.TriggerSchedule})).NoError(t)
	select {
	case <-generating:
	case <-time.After(10 * time.Second):
		t.Fatal("first run did not reach the generator")
	}
	second := gt.R1(ctrl.Admit(ctx, &model.Trigger{Kind: types.TriggerManual})).NoError(t)

	gt.True(t, usecase.IsCancelled(ctrl.Wait(ctx, first)))
	gt.NoError(t, ctrl.Wait(ctx, second))
	gt.NoError(t, ctrl.Shutdown(ctx))

	cancelled := gt.R1(uc.GetRun(ctx, first)).NoError(t)
	gt.V(t, cancelled.State).Equal(types.RunStateCancelled)
	gt.V(t, cancelled.Outcome).Equal(types.RunOutcomeCancelled)
	gt.V(t, cancelled.PublishedCommit).Equal(types.CommitSHA(""))

	published := gt.R1(uc.GetRun(ctx, second)).NoError(t)
	gt.V(t, published.Outcome).Equal(types.RunOutcomePublished)

	// only the newer Run reached the published branch
	tip := remote.Tip(t, branch)
	gt.V(t, tip.Hash.String()).Equal(published.PublishedCommit.String())
	gt.A(t, tip.ParentHashes).Length(1)
	gt.V(t, tip.ParentHashes[0]).Equal(base.Hash)

	file := gt.R1(tip.File("index.json")).NoError(t)
	gt.V(t, gt.R1(file.Contents()).NoError(t)).Equal("B")

	// the same outcome is answered after the controller forgot the Runs
	gt.True(t, usecase.IsCancelled(ctrl.Wait(ctx, first)))
	gt.NoError(t, ctrl.Wait(ctx, second))
}
