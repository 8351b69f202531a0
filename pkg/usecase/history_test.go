package usecase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/aptpages/pkg/domain/mock"
	"github.com/m-mizutani/aptpages/pkg/domain/model"
	"github.com/m-mizutani/aptpages/pkg/usecase"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
)

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	ctx := context.Background()
	record := &model.RunRecord{ID: "x", Outcome: "published"}
	schema := gt.R1(bqs.Infer(record)).NoError(t)

	t.Run("create table when not exists", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) { return nil, nil },
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error { return nil },
		}
		got := gt.R1(usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, record)).NoError(t)
		gt.True(t, bqs.Equal(got, schema))
		gt.A(t, bq.CreateTableCalls()).Length(1)
	})

	t.Run("do nothing when schema is equal", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: schema}, nil
			},
		}
		gt.R1(usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, record)).NoError(t)
		gt.A(t, bq.CreateTableCalls()).Length(0)
		gt.A(t, bq.UpdateTableCalls()).Length(0)
	})

	t.Run("merge schema when a column is missing", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{
					Schema: bigquery.Schema{{Name: "id", Type: bigquery.StringFieldType}},
					ETag:   "etag-1",
				}, nil
			},
			UpdateTableFunc: func(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
				return nil
			},
		}
		got := gt.R1(usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, record)).NoError(t)
		gt.V(t, len(got)).Equal(len(schema))

		calls := bq.UpdateTableCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].ETag).Equal("etag-1")
	})
}
