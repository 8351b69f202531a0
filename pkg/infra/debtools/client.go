package debtools

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client runs the Debian archive tools installed on the host
type Client struct {
	scanPackagesPath string
	ftpArchivePath   string
}

var _ interfaces.DebTools = (*Client)(nil)

type Option func(*Client)

func WithScanPackagesPath(path string) Option {
	return func(x *Client) {
		x.scanPackagesPath = path
	}
}

func WithFTPArchivePath(path string) Option {
	return func(x *Client) {
		x.ftpArchivePath = path
	}
}

func New(options ...Option) *Client {
	client := &Client{
		scanPackagesPath: "dpkg-scanpackages",
		ftpArchivePath:   "apt-ftparchive",
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) run(ctx context.Context, dir string, stdout io.Writer, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	logging.From(ctx).Debug("run command",
		slog.String("command", name),
		slog.Any("args", args),
		slog.String("dir", dir),
	)

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "command failed",
			goerr.V("command", name),
			goerr.V("args", args),
			goerr.V("dir", dir),
			goerr.V("stderr", stderr.String()),
		)
	}
	return nil
}

// ScanPackages runs `dpkg-scanpackages --multiversion .` in dir
func (x *Client) ScanPackages(ctx context.Context, dir string) (string, error) {
	var stdout bytes.Buffer
	if err := x.run(ctx, dir, &stdout, x.scanPackagesPath, "--multiversion", "."); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// Release runs `apt-ftparchive -c <conf> release <dir>` in workDir and writes the Release content to w
func (x *Client) Release(ctx context.Context, workDir, confPath, releaseDir string, w io.Writer) error {
	return x.run(ctx, workDir, w, x.ftpArchivePath, "-c", confPath, "release", releaseDir)
}
