package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestParseAptConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := model.ParseAptConfig([]byte(`
output_dir = "dist"
suite = "stable"
component = "main"
repositories = ["owner/tool", "owner/other"]
`))
		gt.NoError(t, err)
		gt.V(t, cfg.OutputDir).Equal("dist")
		gt.V(t, cfg.Suite).Equal("stable")
		gt.V(t, cfg.Component).Equal("main")
		gt.A(t, cfg.Repositories).Length(2)
	})

	t.Run("missing suite", func(t *testing.T) {
		_, err := model.ParseAptConfig([]byte(`
output_dir = "dist"
component = "main"
`))
		gt.Error(t, err)
	})

	t.Run("broken repository name", func(t *testing.T) {
		_, err := model.ParseAptConfig([]byte(`
output_dir = "dist"
suite = "stable"
component = "main"
repositories = ["no-slash"]
`))
		gt.Error(t, err)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := model.ParseAptConfig([]byte(`suite = `))
		gt.Error(t, err)
	})
}

func TestPackageCacheList(t *testing.T) {
	older := model.ISOTime{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := model.ISOTime{Time: time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC)}

	list := model.PackageCacheList{
		{Arch: "amd64", Filename: "a_1.0_amd64.deb", Package: "Package: a\n", PublishedAt: older, Repo: "owner/a", Tag: "v1.0"},
		{Arch: "arm64", Filename: "a_2.0_arm64.deb", Package: "Package: a\n", PublishedAt: newer, Repo: "owner/a", Tag: "v2.0"},
		{Arch: "amd64", Filename: "a_2.0_amd64.deb", Package: "Package: a\n", PublishedAt: newer, Repo: "owner/a", Tag: "v2.0"},
	}

	t.Run("sort by published_at and filename descending", func(t *testing.T) {
		list.Sort()
		gt.V(t, list[0].Filename).Equal("a_2.0_arm64.deb")
		gt.V(t, list[1].Filename).Equal("a_2.0_amd64.deb")
		gt.V(t, list[2].Filename).Equal("a_1.0_amd64.deb")
	})

	t.Run("contains", func(t *testing.T) {
		gt.True(t, list.Contains("owner/a", "v2.0", "a_2.0_amd64.deb"))
		gt.False(t, list.Contains("owner/a", "v1.0", "a_2.0_amd64.deb"))
	})

	t.Run("marshal keeps sorted keys and offset timestamps", func(t *testing.T) {
		raw, err := model.PackageCacheList{list[2]}.Marshal()
		gt.NoError(t, err)
		gt.V(t, string(raw)).Equal(`[
  {
    "arch": "amd64",
    "filename": "a_1.0_amd64.deb",
    "package": "Package: a\n",
    "published_at": "2024-01-01T00:00:00+00:00",
    "repo": "owner/a",
    "tag": "v1.0"
  }
]`)

		decoded, err := model.UnmarshalPackageCacheList(raw)
		gt.NoError(t, err)
		gt.A(t, decoded).Length(1)
		gt.True(t, decoded[0].PublishedAt.Equal(older.Time))
	})

	t.Run("empty list marshals as empty array", func(t *testing.T) {
		raw, err := model.PackageCacheList(nil).Marshal()
		gt.NoError(t, err)
		gt.V(t, string(raw)).Equal("[]")
	})

	t.Run("broken cache is rejected", func(t *testing.T) {
		_, err := model.UnmarshalPackageCacheList([]byte(`{"not":"a list"}`))
		gt.Error(t, err)

		_, err = model.UnmarshalPackageCacheList([]byte(`[{"repo":"owner/a"}]`))
		gt.Error(t, err)
	})
}

func TestCacheFileName(t *testing.T) {
	gt.V(t, model.CacheFileName("owner/tool")).Equal("package-cache-owner-tool.json")
}

func TestSortReleasesNewestFirst(t *testing.T) {
	releases := []*model.Release{
		{TagName: "v1", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{TagName: "v3", PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{TagName: "v2", PublishedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	model.SortReleasesNewestFirst(releases)
	gt.V(t, releases[0].TagName).Equal("v3")
	gt.V(t, releases[1].TagName).Equal("v2")
	gt.V(t, releases[2].TagName).Equal("v1")
}
