package repositories

import (
	"context"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"
	"github.com/jackc/pgx/v5"

	"github.com/casetrail/casetrail-backend/models"
)

// RecordProvenance carries the bookkeeping columns attached to every row
// created by an import, on top of the entity's own values.
type RecordProvenance struct {
	OrganizationId     string
	ImportBatchId      string
	ExternalRecordId   string
	ExternalSystemName string
}

func (repo *CasetrailDbRepository) InsertImportedRecord(ctx context.Context, exec Executor,
	entityType models.EntityType, values map[string]any, provenance RecordProvenance,
) (string, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return "", err
	}

	columnNames, columnValues := generateInsertValues(values)
	columnNames = append(columnNames,
		"id", "org_id", "import_batch_id", "external_record_id",
		"external_system_name", "imported_at")
	columnValues = append(columnValues,
		uuid.NewString(), provenance.OrganizationId, provenance.ImportBatchId,
		provenance.ExternalRecordId, provenance.ExternalSystemName, squirrel.Expr("now()"))

	sql, args, err := NewQueryBuilder().
		Insert(entityType.TableName()).
		Columns(columnNames...).
		Values(columnValues...).
		Suffix("RETURNING \"id\"").
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "can't build sql query")
	}

	var createdRecordId string
	if err := exec.QueryRow(ctx, sql, args...).Scan(&createdRecordId); err != nil {
		return "", errors.Wrap(err,
			"error inserting imported record into "+entityType.TableName())
	}
	return createdRecordId, nil
}

// columns are sorted so the generated SQL is identical across rows of a file.
func generateInsertValues(values map[string]any) (columnNames []string, columnValues []any) {
	columnNames = make([]string, 0, len(values))
	for name := range values {
		columnNames = append(columnNames, name)
	}
	sort.Strings(columnNames)

	columnValues = make([]any, len(columnNames))
	for i, name := range columnNames {
		columnValues[i] = values[name]
	}
	return columnNames, columnValues
}

func (repo *CasetrailDbRepository) ListExternalIdsOfEntityType(ctx context.Context, exec Executor,
	organizationId string, entityType models.EntityType,
) (*set.Set[string], error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	externalIds := set.New[string](0)
	err := ForEachRow(
		ctx,
		exec,
		NewQueryBuilder().
			Select(entityType.ExternalIdColumn()).
			From(entityType.TableName()).
			Where(squirrel.Eq{"org_id": organizationId}),
		func(row pgx.CollectableRow) error {
			var externalId string
			if err := row.Scan(&externalId); err != nil {
				return err
			}
			externalIds.Insert(externalId)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return externalIds, nil
}

func (repo *CasetrailDbRepository) DeleteImportedRecords(ctx context.Context, exec Executor,
	organizationId string, entityType models.EntityType, importBatchId string,
) (int64, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return 0, err
	}

	sql, args, err := NewQueryBuilder().
		Delete(entityType.TableName()).
		Where(squirrel.Eq{
			"org_id":          organizationId,
			"import_batch_id": importBatchId,
		}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return 0, errors.Wrap(err,
			"error deleting imported records from "+entityType.TableName())
	}
	return tag.RowsAffected(), nil
}
