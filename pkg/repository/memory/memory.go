package memory

import (
	"sync"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
)

// New creates a new in-memory repository. It is shared by Runs of one
// process only, so it serves single instance deployments and tests.
func New() interfaces.RunRepository {
	return &runRepository{
		slots: make(map[types.GroupKey]*model.Slot),
		runs:  make(map[types.RunID]*model.Run),
	}
}

type runRepository struct {
	mu    sync.RWMutex
	slots map[types.GroupKey]*model.Slot
	runs  map[types.RunID]*model.Run
}
