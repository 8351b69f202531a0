package archive_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/aptpages/pkg/utils/archive"
	"github.com/m-mizutani/gt"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWriteAndExtract(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "index.json"), "A")
	writeFile(t, filepath.Join(src, "dists", "stable", "Release"), "Suite: stable\n")
	writeFile(t, filepath.Join(src, ".git", "HEAD"), "ref: refs/heads/gh-pages\n")

	var buf bytes.Buffer
	gt.NoError(t, archive.Write(src, &buf))

	dst := t.TempDir()
	gt.NoError(t, archive.Extract(&buf, dst))

	got := gt.R1(os.ReadFile(filepath.Join(dst, "index.json"))).NoError(t)
	gt.V(t, string(got)).Equal("A")
	got = gt.R1(os.ReadFile(filepath.Join(dst, "dists", "stable", "Release"))).NoError(t)
	gt.V(t, string(got)).Equal("Suite: stable\n")

	_, err := os.Stat(filepath.Join(dst, ".git"))
	gt.True(t, os.IsNotExist(err))
}

func TestExtractInvalid(t *testing.T) {
	gt.Error(t, archive.Extract(bytes.NewReader([]byte("not gzip")), t.TempDir()))
}
