package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
)

type UseCase interface {
	NewRun(ctx context.Context, trigger *model.Trigger) (*model.Run, error)
	ExecuteRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, runID types.RunID) (*model.Run, error)
	ListRuns(ctx context.Context, limit int) ([]*model.Run, error)
}
