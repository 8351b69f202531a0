package usecase

import (
	"context"
	"io"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/aptpages/pkg/domain/interfaces"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/utils/archive"
	"github.com/m-mizutani/aptpages/pkg/utils/errutil"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// SnapshotGeneration is the layout of snapshot generation names
const SnapshotGeneration = "20060102T150405Z"

// recordHistory appends the finished Run to the history table. Failures are
// reported but never change the Run outcome.
func (x *UseCase) recordHistory(ctx context.Context, run *model.Run) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	record := model.NewRunRecord(run)
	schema, err := createOrUpdateBigQueryTable(ctx, bq, record)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare run history table", err)
		return
	}

	raw := &model.RunRecordRaw{
		RunRecord: *record,
		Timestamp: record.Timestamp.UnixMicro(),
	}
	if err := bq.Insert(ctx, schema, raw); err != nil {
		errutil.HandleError(ctx, "failed to insert run history", goerr.Wrap(err, "failed to insert run record"))
		return
	}

	logging.From(ctx).Debug("run history recorded")
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.RunRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer run record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}

// saveSnapshot uploads the published tree as a full-state archive
func (x *UseCase) saveSnapshot(ctx context.Context, run *model.Run, ws *Workspace, result *model.PublishResult) {
	store := x.clients.SnapshotStore()
	if store == nil || result == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	generation := result.PublishedAt.UTC().Format(SnapshotGeneration)
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(archive.Write(ws.OutputDir, pw))
	}()

	if err := store.Put(ctx, run.GroupKey, generation, pr); err != nil {
		_ = pr.CloseWithError(err)
		errutil.HandleError(ctx, "failed to save snapshot", err)
		return
	}

	logging.From(ctx).Info("snapshot saved", slog.String("generation", generation))
}
