package interfaces

//go:generate moq -out ../mock/controller.go -pkg mock . TriggerController

import (
	"context"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
)

// TriggerController admits triggers and runs them in the background
type TriggerController interface {
	Admit(ctx context.Context, trigger *model.Trigger) (types.RunID, error)
}
