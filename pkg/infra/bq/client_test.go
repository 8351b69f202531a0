package bq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/m-mizutani/aptpages/pkg/infra/bq"
	"github.com/m-mizutani/aptpages/pkg/utils/testutil"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newClient(t *testing.T, prefix string) (*bq.Client, types.BQTableID) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	tblName := types.BQTableID(time.Now().Format(prefix + "_20060102_150405"))
	client := gt.R1(bq.New(context.Background(), types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)
	return client, tblName
}

func newRunRecord() model.RunRecordRaw {
	now := time.Now().UTC()
	run := &model.Run{
		ID:              types.NewRunID(),
		Trigger:         types.TriggerSchedule,
		TriggeredBy:     "cron",
		GroupKey:        types.NewGroupKey("publish", "refs/heads/main"),
		State:           types.RunStateDone,
		Outcome:         types.RunOutcomePublished,
		SourceCommit:    "1111111111111111111111111111111111111111",
		BaseCommit:      "2222222222222222222222222222222222222222",
		PublishedCommit: "3333333333333333333333333333333333333333",
		StartedAt:       now.Add(-time.Minute),
		FinishedAt:      now,
	}
	record := model.NewRunRecord(run)
	return model.RunRecordRaw{
		RunRecord: *record,
		Timestamp: record.Timestamp.UnixMicro(),
	}
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	client, tblName := newClient(t, "runs_test")

	md, err := client.GetMetadata(ctx)
	gt.NoError(t, err)
	gt.V(t, md).Equal(nil)

	schema := gt.R1(bqs.Infer(model.RunRecord{})).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	md = gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.V(t, md).NotEqual(nil)
	gt.NoError(t, client.Insert(ctx, schema, newRunRecord()))
}

func TestInsertAfterSchemaUpdate(t *testing.T) {
	ctx := context.Background()
	client, tblName := newClient(t, "runs_schema_test")

	full := gt.R1(bqs.Infer(model.RunRecord{})).NoError(t)
	var initial bigquery.Schema
	for _, f := range full {
		if f.Name != "error" {
			initial = append(initial, f)
		}
	}
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: initial,
	}))

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: full}, md.ETag))

	client.SetRetryDelayForTest(time.Second)
	gt.NoError(t, client.Insert(ctx, full, newRunRecord()))
}

func TestProtoFieldJSONName(t *testing.T) {
	gt.V(t, bq.ProtoFieldJSONName("published_commit")).Equal("published_commit")
	gt.V(t, bq.ProtoFieldJSONName("build-id")).Equal("col_YnVpbGQtaWQ")
}

func TestSanitizeProtoJSON(t *testing.T) {
	raw := []byte(`{"labels":{"build-id":3,"arch":2}}`)
	sanitized := gt.R1(bq.SanitizeProtoJSON(raw)).NoError(t)

	dec := json.NewDecoder(bytes.NewReader(sanitized))
	dec.UseNumber()
	var payload map[string]map[string]any
	gt.NoError(t, dec.Decode(&payload))

	labels := payload["labels"]
	_, renamed := labels[bq.ProtoFieldJSONName("build-id")]
	_, original := labels["build-id"]
	gt.True(t, renamed)
	gt.False(t, original)
	gt.V(t, labels["arch"]).Equal(json.Number("2"))
}

func TestIsSchemaNotFoundError(t *testing.T) {
	mismatch := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'error'")

	testCases := map[string]struct {
		err  error
		want bool
	}{
		"schema mismatch":      {err: mismatch, want: true},
		"wrapped by goerr":     {err: goerr.Wrap(goerr.Wrap(mismatch, "insert"), "save history"), want: true},
		"other argument error": {err: status.Error(codes.InvalidArgument, "Invalid request parameters"), want: false},
		"other code":           {err: status.Error(codes.PermissionDenied, "Input schema has more fields than BigQuery schema"), want: false},
		"not gRPC":             {err: errors.New("some other error"), want: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, bq.IsSchemaNotFoundError(tc.err)).Equal(tc.want)
		})
	}
}
