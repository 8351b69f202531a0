// Package archive packs a published tree into tar.gz snapshots
package archive

import (
	"archive/tar"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/m-mizutani/aptpages/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Write writes regular files under dir as tar.gz. The .git directory is skipped.
func Write(dir string, w io.Writer) error {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer safe.Close(f)

		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to archive directory", goerr.V("dir", dir))
	}

	if err := tw.Close(); err != nil {
		return goerr.Wrap(err, "failed to close tar writer")
	}
	if err := gw.Close(); err != nil {
		return goerr.Wrap(err, "failed to close gzip writer")
	}
	return nil
}

// Extract restores an archive made by Write into dir
func Extract(r io.Reader, dir string) error {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return goerr.Wrap(err, "failed to open gzip stream")
	}
	defer safe.Close(gr)

	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read tar entry")
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		dst := filepath.Join(dir, filepath.FromSlash(hdr.Name))
		if !strings.HasPrefix(dst, filepath.Clean(dir)+string(os.PathSeparator)) {
			return goerr.New("archive entry escapes destination", goerr.V("name", hdr.Name))
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("path", dst))
		}
		if err := extractFile(tr, dst, os.FileMode(hdr.Mode).Perm()); err != nil {
			return err
		}
	}
}

func extractFile(r io.Reader, dst string, perm os.FileMode) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", dst))
	}
	defer safe.Close(f)

	if _, err := io.Copy(f, r); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", dst))
	}
	return nil
}
