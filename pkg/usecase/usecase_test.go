package usecase_test

import (
	"testing"

	"github.com/m-mizutani/aptpages/pkg/infra"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("defaults follow the publish workflow", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.V(t, uc.SourceRef()).Equal("refs/heads/main")
	})

	t.Run("source branch option changes the push ref", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithSourceBranch("release"))
		gt.V(t, uc.SourceRef()).Equal("refs/heads/release")
	})
}
