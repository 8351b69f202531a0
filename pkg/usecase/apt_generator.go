package usecase

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/aptpages/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	AptConfigFile = "config.toml"
	aptPublicDir  = "public"
)

var archPattern = regexp.MustCompile(`Architecture: (\S+)\n`)

// AptGenerator builds an APT repository (pool, Packages and Release) from
// .deb assets of GitHub releases
type AptGenerator struct {
	releases interfaces.ReleaseSource
	debTools interfaces.DebTools
}

var _ interfaces.Generator = (*AptGenerator)(nil)

// NewAptGenerator creates the generator. With nil debTools, assets are
// downloaded into the pool but neither scanned nor indexed.
func NewAptGenerator(releases interfaces.ReleaseSource, debTools interfaces.DebTools) *AptGenerator {
	return &AptGenerator{
		releases: releases,
		debTools: debTools,
	}
}

// LoadAptConfig reads config.toml of the source directory
func LoadAptConfig(sourceDir string) (*model.AptConfig, error) {
	path := filepath.Join(sourceDir, AptConfigFile)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config", goerr.V("path", path))
	}
	return model.ParseAptConfig(data)
}

func (x *AptGenerator) Generate(ctx context.Context, input *model.GenerateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if x.releases == nil {
		return goerr.Wrap(types.ErrInvalidOption, "release source is not configured")
	}

	cfg, err := LoadAptConfig(input.SourceDir)
	if err != nil {
		return err
	}

	outputDir := input.OutputDir
	poolRoot := filepath.Join(outputDir, "pool", cfg.Component)
	releaseDir := filepath.Join(outputDir, "dists", cfg.Suite)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
	}

	if err := copyPublicFiles(ctx, filepath.Join(input.SourceDir, aptPublicDir), outputDir); err != nil {
		return err
	}

	if err := os.RemoveAll(filepath.Join(releaseDir, cfg.Component)); err != nil {
		return goerr.Wrap(err, "failed to clean component directory", goerr.V("dir", releaseDir))
	}
	for _, dir := range []string{releaseDir, poolRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
		}
	}

	repos := append([]string{}, cfg.Repositories...)
	sort.Strings(repos)

	var all model.PackageCacheList
	for _, repo := range repos {
		entries, err := x.handleRepo(ctx, outputDir, poolRoot, repo)
		if err != nil {
			return goerr.Wrap(err, "failed to process repository", goerr.V("repo", repo))
		}
		all = append(all, entries...)
	}

	if err := writePackages(filepath.Join(releaseDir, cfg.Component), all); err != nil {
		return err
	}

	if x.debTools != nil {
		if err := x.writeRelease(ctx, input.SourceDir, cfg, releaseDir); err != nil {
			return err
		}
	}

	logging.From(ctx).Info("APT index generated",
		slog.String("suite", cfg.Suite),
		slog.String("component", cfg.Component),
		slog.Int("packages", len(all)),
	)
	return nil
}

func copyPublicFiles(ctx context.Context, publicDir, outputDir string) error {
	if _, err := os.Stat(publicDir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	err := filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(publicDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}

		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return err
		}
		logging.From(ctx).Log(ctx, logging.LevelTrace, "copy public file", slog.String("src", rel), slog.String("dst", dst))
		return os.WriteFile(dst, data, 0644)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to copy public files", goerr.V("dir", publicDir))
	}
	return nil
}

// loadCache reads the package cache of a repository. A broken cache file is
// removed and treated as empty.
func loadCache(ctx context.Context, path string) (model.PackageCacheList, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read package cache", goerr.V("path", path))
	}

	cache, err := model.UnmarshalPackageCacheList(data)
	if err != nil {
		logging.From(ctx).Warn("package cache is broken, starting over",
			slog.String("path", path),
			slog.Any("error", err),
		)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "failed to remove broken package cache", goerr.V("path", path))
		}
		return nil, nil
	}
	return cache, nil
}

func writeCache(path string, cache model.PackageCacheList) error {
	cache.Sort()
	data, err := cache.Marshal()
	if err != nil {
		return err
	}
	if err := safe.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write package cache", goerr.V("path", path))
	}
	return nil
}

// handleRepo indexes the .deb assets of the newest release that has any
// not yet cached. The cache file is written even when processing fails.
func (x *AptGenerator) handleRepo(ctx context.Context, outputDir, poolRoot, repo string) (_ model.PackageCacheList, err error) {
	owner, name, err := model.SplitRepoName(repo)
	if err != nil {
		return nil, err
	}

	cachePath := filepath.Join(outputDir, model.CacheFileName(repo))
	cache, err := loadCache(ctx, cachePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if werr := writeCache(cachePath, cache); werr != nil && err == nil {
			err = werr
		}
	}()

	releases, err := x.releases.ListReleases(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	found := false
	for _, release := range releases {
		if found {
			break
		}
		logging.From(ctx).Info("processing release", slog.String("repo", repo), slog.String("tag", release.TagName))

		for _, asset := range release.Assets {
			if !strings.HasSuffix(asset.Name, ".deb") {
				continue
			}
			if cache.Contains(repo, release.TagName, asset.Name) {
				continue
			}
			found = true

			entry, err := x.handleAsset(ctx, outputDir, poolRoot, repo, release, asset)
			if err != nil {
				return nil, err
			}
			if entry != nil {
				cache = append(cache, entry)
			}
		}
	}

	return cache, nil
}

func (x *AptGenerator) handleAsset(ctx context.Context, outputDir, poolRoot, repo string, release *model.Release, asset model.Asset) (*model.PackageCache, error) {
	localDir := filepath.Join(poolRoot, filepath.FromSlash(repo), release.TagName)
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create pool directory", goerr.V("dir", localDir))
	}
	localPath := filepath.Join(localDir, asset.Name)

	logging.From(ctx).Info("processing asset",
		slog.String("repo", repo),
		slog.String("tag", release.TagName),
		slog.String("asset", asset.Name),
	)

	if err := x.download(ctx, asset.BrowserDownloadURL, localPath); err != nil {
		return nil, err
	}

	if x.debTools == nil {
		return nil, nil
	}

	pkg, err := x.debTools.ScanPackages(ctx, outputDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan package", goerr.V("asset", asset.Name))
	}
	arch, err := parseArch(pkg)
	if err != nil {
		return nil, err
	}

	safe.Remove(localPath)

	return &model.PackageCache{
		Arch:        arch,
		Filename:    asset.Name,
		Package:     pkg,
		PublishedAt: model.ISOTime{Time: release.PublishedAt},
		Repo:        repo,
		Tag:         release.TagName,
	}, nil
}

func (x *AptGenerator) download(ctx context.Context, url, dst string) error {
	f, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return goerr.Wrap(err, "failed to create asset file", goerr.V("path", dst))
	}
	defer safe.Close(f)

	if err := x.releases.DownloadAsset(ctx, url, f); err != nil {
		return err
	}
	return nil
}

func parseArch(pkg string) (string, error) {
	m := archPattern.FindStringSubmatch(pkg)
	if m == nil {
		return "", goerr.New("can not find arch in package stanza", goerr.V("package", pkg))
	}
	return m[1], nil
}

// writePackages writes binary-<arch>/Packages under componentDir from every cache entry
func writePackages(componentDir string, entries model.PackageCacheList) error {
	byArch := map[string]*bytes.Buffer{}
	var archs []string
	for _, entry := range entries {
		buf, ok := byArch[entry.Arch]
		if !ok {
			buf = &bytes.Buffer{}
			byArch[entry.Arch] = buf
			archs = append(archs, entry.Arch)
		}
		buf.WriteString(entry.Package)
	}

	for _, arch := range archs {
		dir := filepath.Join(componentDir, "binary-"+arch)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create binary directory", goerr.V("dir", dir))
		}
		path := filepath.Join(dir, "Packages")
		if err := os.WriteFile(path, byArch[arch].Bytes(), 0644); err != nil {
			return goerr.Wrap(err, "failed to write Packages", goerr.V("path", path))
		}
	}
	return nil
}

func (x *AptGenerator) writeRelease(ctx context.Context, sourceDir string, cfg *model.AptConfig, releaseDir string) error {
	var buf bytes.Buffer
	if err := x.debTools.Release(ctx, sourceDir, cfg.Suite+".conf", releaseDir, &buf); err != nil {
		return goerr.Wrap(err, "failed to generate Release", goerr.V("suite", cfg.Suite))
	}

	path := filepath.Join(releaseDir, "Release")
	if err := safe.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return goerr.Wrap(err, "failed to write Release", goerr.V("path", path))
	}
	return nil
}
