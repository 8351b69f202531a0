package interfaces

import (
	"context"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . RunRepository

// RunRepository keeps Run records and the concurrency slot of each group
type RunRepository interface {
	// Slot operations
	AcquireSlot(ctx context.Context, req *model.SlotRequest) (*model.Slot, error)
	CheckSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error
	ReleaseSlot(ctx context.Context, key types.GroupKey, runID types.RunID) error
	GetSlot(ctx context.Context, key types.GroupKey) (*model.Slot, error)

	// Run operations
	PutRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, runID types.RunID) (*model.Run, error)
	ListRuns(ctx context.Context, key types.GroupKey, limit int) ([]*model.Run, error)
}
