package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCommandGenerator(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh is not available")
	}

	t.Run("generator writes into the output directory", func(t *testing.T) {
		srcDir := t.TempDir()
		outDir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(srcDir, "name.txt"), []byte("source"), 0644))

		gen := gt.R1(usecase.NewCommandGenerator([]string{
			"/bin/sh", "-c", `cat name.txt > "$APTPAGES_OUTPUT_DIR/out.txt"; printf "%s" "$PAT" > "$APTPAGES_OUTPUT_DIR/pat.txt"; echo done`,
		})).NoError(t)

		gt.NoError(t, gen.Generate(context.Background(), &model.GenerateInput{
			SourceDir:  srcDir,
			OutputDir:  outDir,
			Credential: "test-token",
		}))

		gt.V(t, readFile(t, filepath.Join(outDir, "out.txt"))).Equal("source\n")
		gt.V(t, readFile(t, filepath.Join(outDir, "pat.txt"))).Equal("test-token")
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		gen := gt.R1(usecase.NewCommandGenerator([]string{"/bin/sh", "-c", "echo oops >&2; exit 3"})).NoError(t)
		err := gen.Generate(context.Background(), &model.GenerateInput{
			SourceDir: t.TempDir(),
			OutputDir: t.TempDir(),
		})
		gt.Error(t, err)
	})

	t.Run("cancelled context stops the generator", func(t *testing.T) {
		gen := gt.R1(usecase.NewCommandGenerator([]string{"/bin/sh", "-c", "sleep 10"})).NoError(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gt.Error(t, gen.Generate(ctx, &model.GenerateInput{
			SourceDir: t.TempDir(),
			OutputDir: t.TempDir(),
		}))
	})
}

func TestNewCommandGenerator(t *testing.T) {
	_, err := usecase.NewCommandGenerator(nil)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = usecase.NewCommandGenerator([]string{""})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestCommandEnv(t *testing.T) {
	t.Run("with credential", func(t *testing.T) {
		env := usecase.CommandEnv([]string{"HOME=/root"}, &model.GenerateInput{
			OutputDir:  "/tmp/out",
			Credential: "xyz",
		})
		gt.A(t, env).Length(4).
			Have("HOME=/root").
			Have("CI=true").
			Have("APTPAGES_OUTPUT_DIR=/tmp/out").
			Have("PAT=xyz")
	})

	t.Run("without credential", func(t *testing.T) {
		env := usecase.CommandEnv(nil, &model.GenerateInput{OutputDir: "/tmp/out"})
		gt.A(t, env).Length(2)
	})
}
