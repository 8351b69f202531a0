package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/git"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/aptpages/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Workspace is the pair of working copies a Run operates on
type Workspace struct {
	SourceDir    string
	OutputDir    string
	SourceCommit types.CommitSHA
	BaseCommit   types.CommitSHA
	Output       interfaces.GitRepository

	removeDirs []string
}

// Cleanup removes every directory the Run created
func (x *Workspace) Cleanup() {
	for i := len(x.removeDirs) - 1; i >= 0; i-- {
		safe.RemoveAll(x.removeDirs[i])
	}
	x.removeDirs = nil
}

// Prepare checks out the source and shallow-clones the published branch
// into an isolated output directory
func (x *UseCase) Prepare(ctx context.Context, run *model.Run) (*Workspace, error) {
	if x.remoteURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "remote URL of the published branch is not configured")
	}

	ws := &Workspace{}
	ok := false
	defer func() {
		if !ok {
			ws.Cleanup()
		}
	}()

	gitClient := x.clients.Git()

	if x.sourceURL != "" {
		srcDir, err := os.MkdirTemp("", "aptpages.source.*")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create temp directory for source")
		}
		ws.removeDirs = append(ws.removeDirs, srcDir)

		src, err := gitClient.Clone(ctx, &interfaces.CloneInput{
			URL:    x.sourceURL,
			Branch: x.sourceBranch,
			Dir:    srcDir,
			Depth:  1,
		})
		if err != nil {
			return nil, types.ErrWorkspace.Wrap(err, goerr.V("step", "clone source"))
		}
		ws.SourceDir = srcDir
		if ws.SourceCommit, err = src.Head(ctx); err != nil {
			return nil, err
		}

		outDir, err := os.MkdirTemp("", "aptpages.output.*")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create temp directory for output")
		}
		ws.removeDirs = append(ws.removeDirs, outDir)
		ws.OutputDir = outDir
	} else {
		srcDir, err := filepath.Abs(x.sourceDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve source directory", goerr.V("dir", x.sourceDir))
		}
		ws.SourceDir = srcDir

		if src, err := gitClient.Open(ctx, srcDir); err != nil {
			logging.From(ctx).Warn("source directory is not a git repository, source commit is unknown",
				slog.String("dir", srcDir),
			)
		} else if ws.SourceCommit, err = src.Head(ctx); err != nil {
			return nil, err
		}

		outDir := filepath.Join(srcDir, x.outputDir)
		empty, err := git.IsEmptyDir(outDir)
		if err != nil {
			return nil, err
		}
		if !empty {
			return nil, goerr.Wrap(types.ErrWorkspace, "output directory already exists", goerr.V("dir", outDir))
		}
		ws.removeDirs = append(ws.removeDirs, outDir)
		ws.OutputDir = outDir
	}

	out, err := gitClient.Clone(ctx, &interfaces.CloneInput{
		URL:    x.remoteURL,
		Branch: x.publishBranch,
		Dir:    ws.OutputDir,
		Depth:  1,
	})
	if err != nil {
		return nil, types.ErrWorkspace.Wrap(err, goerr.V("step", "clone published branch"))
	}
	ws.Output = out

	if ws.BaseCommit, err = out.Head(ctx); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("workspace prepared",
		slog.String("source_dir", ws.SourceDir),
		slog.String("output_dir", ws.OutputDir),
		slog.Any("source_commit", ws.SourceCommit),
		slog.Any("base_commit", ws.BaseCommit),
	)

	ok = true
	return ws, nil
}
