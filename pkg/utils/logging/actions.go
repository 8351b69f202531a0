package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// inGitHubActions reports whether the process runs as a GitHub Actions step
func inGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

var workflowCommandEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// actionsHandler writes a workflow command for every warning and error so
// that they are shown as annotations of the job. Only the message is
// emitted; attributes go through the wrapped handler and its masking.
type actionsHandler struct {
	slog.Handler
	w  io.Writer
	mu *sync.Mutex
}

func newActionsHandler(h slog.Handler, w io.Writer) slog.Handler {
	return &actionsHandler{Handler: h, w: w, mu: &sync.Mutex{}}
}

func (x *actionsHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		cmd := "warning"
		if r.Level >= slog.LevelError {
			cmd = "error"
		}
		x.mu.Lock()
		_, _ = fmt.Fprintf(x.w, "::%s::%s\n", cmd, workflowCommandEscaper.Replace(r.Message))
		x.mu.Unlock()
	}
	return x.Handler.Handle(ctx, r)
}

func (x *actionsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &actionsHandler{Handler: x.Handler.WithAttrs(attrs), w: x.w, mu: x.mu}
}

func (x *actionsHandler) WithGroup(name string) slog.Handler {
	return &actionsHandler{Handler: x.Handler.WithGroup(name), w: x.w, mu: x.mu}
}
