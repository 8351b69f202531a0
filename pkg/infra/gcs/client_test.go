package gcs_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/gcs"
	"github.com/m-mizutani/aptpages/pkg/utils/archive"
	"github.com/m-mizutani/aptpages/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestObjectName(t *testing.T) {
	key := types.NewGroupKey("publish", "refs/heads/main")
	gt.V(t, gcs.ObjectName("snapshots", key, "20240101T000000Z")).
		Equal("snapshots/publish/refs/heads/main/20240101T000000Z.tar.gz")
	gt.V(t, gcs.ObjectName("", key, "20240101T000000Z")).
		Equal("publish/refs/heads/main/20240101T000000Z.tar.gz")
}

func TestClient(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_STORAGE_BUCKET")

	ctx := context.Background()
	client, err := gcs.New(ctx, bucket, "aptpages-test")
	gt.NoError(t, err)

	key := types.NewGroupKey(time.Now().Format("test-20060102150405"), "refs/heads/main")
	older := "20240101T000000Z"
	newer := "20240102T000000Z"

	for _, gen := range []string{older, newer} {
		src := t.TempDir()
		writeFile(t, filepath.Join(src, "index.json"), gen)
		var buf bytes.Buffer
		gt.NoError(t, archive.Write(src, &buf))
		gt.NoError(t, client.Put(ctx, key, gen, &buf))
	}

	generations, err := client.List(ctx, key)
	gt.NoError(t, err)
	gt.A(t, generations).Length(2)
	gt.V(t, generations[0]).Equal(newer)

	var buf bytes.Buffer
	gt.NoError(t, client.Get(ctx, key, newer, &buf))
	dst := t.TempDir()
	gt.NoError(t, archive.Extract(&buf, dst))
	got := gt.R1(os.ReadFile(filepath.Join(dst, "index.json"))).NoError(t)
	gt.V(t, string(got)).Equal(newer)

	err = client.Get(ctx, key, "19700101T000000Z", &bytes.Buffer{})
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

func TestNewWithoutBucket(t *testing.T) {
	_, err := gcs.New(context.Background(), "", "prefix")
	gt.Error(t, err)
}
