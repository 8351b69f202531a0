package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { _ = logging.Configure("text", "info", "stdout") })

	t.Run("text and trace level", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "trace", "stderr"))
	})

	t.Run("invalid format", func(t *testing.T) {
		gt.Error(t, logging.Configure("yaml", "info", "stdout"))
	})

	t.Run("invalid level", func(t *testing.T) {
		gt.Error(t, logging.Configure("json", "verbose", "stdout"))
	})

	t.Run("json to file masks credentials", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.log")
		gt.NoError(t, logging.Configure("json", "debug", path))

		logging.Default().Info("publishing",
			"token", types.GitHubToken("ghp_0123456789abcdef"),
			"branch", "gh-pages",
		)

		raw, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.False(t, strings.Contains(string(raw), "ghp_0123456789abcdef"))

		var entry map[string]any
		gt.NoError(t, json.Unmarshal([]byte(strings.Split(strings.TrimSpace(string(raw)), "\n")[0]), &entry))
		gt.V(t, entry["msg"]).Equal("publishing")
		gt.V(t, entry["branch"]).Equal("gh-pages")
	})
}
