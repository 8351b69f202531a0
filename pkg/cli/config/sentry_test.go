package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSentry(t *testing.T) {
	t.Run("disabled without DSN", func(t *testing.T) {
		t.Setenv("GITHUB_SHA", "0123abcd")

		var cfg config.Sentry
		parseFlags(t, cfg.Flags())
		gt.False(t, cfg.Enabled())
		gt.NoError(t, cfg.Configure(context.Background()))
		cfg.Flush()
	})

	t.Run("release from flag", func(t *testing.T) {
		var cfg config.Sentry
		parseFlags(t, cfg.Flags(), "--sentry-env", "ci", "--sentry-release", "v1.2.3")
		gt.False(t, cfg.Enabled())

		names := map[string]bool{}
		for _, f := range cfg.Flags() {
			names[f.Names()[0]] = true
		}
		gt.True(t, names["sentry-dsn"])
		gt.True(t, names["sentry-env"])
		gt.True(t, names["sentry-release"])
	})
}
