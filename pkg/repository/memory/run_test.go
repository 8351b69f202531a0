package memory_test

import (
	"testing"

	"github.com/m-mizutani/aptpages/pkg/repository/memory"
	"github.com/m-mizutani/aptpages/pkg/repository/testhelper"
)

func TestMemoryRunRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
