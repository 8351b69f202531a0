package github_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/utils/testutil"
)

func testRepoOrSkip(t *testing.T) []string {
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_RELEASE_REPO")
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 {
		t.Fatalf("TEST_GITHUB_RELEASE_REPO must be owner/repo: %s", repo)
	}
	return parts
}
