package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// AptConfig is the content of config.toml in the source checkout
type AptConfig struct {
	OutputDir    string   `toml:"output_dir"`
	Suite        string   `toml:"suite"`
	Component    string   `toml:"component"`
	Repositories []string `toml:"repositories"`
}

// ParseAptConfig decodes and validates config.toml
func ParseAptConfig(data []byte) (*AptConfig, error) {
	var cfg AptConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config.toml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (x *AptConfig) Validate() error {
	if x.OutputDir == "" {
		return goerr.Wrap(types.ErrValidationFailed, "output_dir is empty")
	}
	if x.Suite == "" {
		return goerr.Wrap(types.ErrValidationFailed, "suite is empty")
	}
	if x.Component == "" {
		return goerr.Wrap(types.ErrValidationFailed, "component is empty")
	}
	for _, repo := range x.Repositories {
		if _, _, err := SplitRepoName(repo); err != nil {
			return err
		}
	}
	return nil
}

// SplitRepoName splits "owner/repo"
func SplitRepoName(name string) (string, string, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "repository must be owner/repo", goerr.V("repository", name))
	}
	return parts[0], parts[1], nil
}

// Asset is a downloadable file attached to a GitHub release
type Asset struct {
	Name               string
	BrowserDownloadURL string
}

// Release is a GitHub release of a package repository
type Release struct {
	TagName     string
	PublishedAt time.Time
	Assets      []Asset
}

// SortReleasesNewestFirst orders releases by publish time, newest first
func SortReleasesNewestFirst(releases []*Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].PublishedAt.After(releases[j].PublishedAt)
	})
}

// ISOTime marshals as ISO-8601 with an explicit UTC offset, e.g. 2024-01-02T03:04:05+00:00
type ISOTime struct {
	time.Time
}

const isoTimeLayout = "2006-01-02T15:04:05.999999-07:00"

func (x ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.Time.UTC().Format(isoTimeLayout))
}

func (x *ISOTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return goerr.Wrap(err, "invalid ISO-8601 time", goerr.V("value", s))
	}
	x.Time = t
	return nil
}

// PackageCache records one .deb asset already scanned into the index.
// Fields are declared in key order so the cache file keeps sorted keys.
type PackageCache struct {
	Arch        string  `json:"arch"`
	Filename    string  `json:"filename"`
	Package     string  `json:"package"`
	PublishedAt ISOTime `json:"published_at"`
	Repo        string  `json:"repo"`
	Tag         string  `json:"tag"`
}

// PackageCacheList is the content of a package-cache-<owner>-<repo>.json file
type PackageCacheList []*PackageCache

// Contains reports whether the asset of the release was already indexed
func (x PackageCacheList) Contains(repo, tag, filename string) bool {
	for _, c := range x {
		if c.Repo == repo && c.Tag == tag && c.Filename == filename {
			return true
		}
	}
	return false
}

// Sort orders entries by (published_at, filename) descending
func (x PackageCacheList) Sort() {
	sort.SliceStable(x, func(i, j int) bool {
		if !x[i].PublishedAt.Equal(x[j].PublishedAt.Time) {
			return x[i].PublishedAt.After(x[j].PublishedAt.Time)
		}
		return x[i].Filename > x[j].Filename
	})
}

// Marshal encodes the list with 2-space indent and without HTML escaping
func (x PackageCacheList) Marshal() ([]byte, error) {
	list := x
	if list == nil {
		list = PackageCacheList{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return nil, goerr.Wrap(err, "failed to encode package cache")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalPackageCacheList decodes a cache file and rejects malformed entries
func UnmarshalPackageCacheList(data []byte) (PackageCacheList, error) {
	var list PackageCacheList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, goerr.Wrap(err, "failed to decode package cache")
	}
	for i, c := range list {
		if c == nil || c.Repo == "" || c.Tag == "" || c.Filename == "" || c.Arch == "" {
			return nil, goerr.Wrap(types.ErrValidationFailed, "broken package cache entry", goerr.V("index", i))
		}
	}
	return list, nil
}

// CacheFileName returns the cache file name of a repository
func CacheFileName(repo string) string {
	return "package-cache-" + strings.ReplaceAll(repo, "/", "-") + ".json"
}
