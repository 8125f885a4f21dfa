package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories/dbmodels"
)

func (repo *CasetrailDbRepository) CreateImportLogEntry(ctx context.Context, exec Executor,
	input models.CreateImportLogEntryInput,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_IMPORT_LOG_ENTRIES).
			Columns(
				"id",
				"import_batch_id",
				"org_id",
				"entity_type",
				"external_id",
				"record_id",
				"status",
			).
			Values(
				uuid.NewString(),
				input.ImportBatchId,
				input.OrganizationId,
				input.EntityType,
				input.ExternalId,
				input.RecordId,
				models.ImportLogSuccess,
			),
	)
}

func (repo *CasetrailDbRepository) ListLogEntriesOfBatch(ctx context.Context, exec Executor,
	importBatchId string,
) ([]models.ImportLogEntry, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectImportLogEntryColumns...).
			From(dbmodels.TABLE_IMPORT_LOG_ENTRIES).
			Where(squirrel.Eq{"import_batch_id": importBatchId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptImportLogEntry,
	)
}

// MarkLogEntriesDeleted flips the batch's log entries to deleted after a
// rollback. The entries themselves stay as audit history.
func (repo *CasetrailDbRepository) MarkLogEntriesDeleted(ctx context.Context, exec Executor,
	importBatchId string,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_IMPORT_LOG_ENTRIES).
			Set("status", models.ImportLogDeleted).
			Where(squirrel.Eq{"import_batch_id": importBatchId}),
	)
}

func (repo *CasetrailDbRepository) CreateImportErrorEntry(ctx context.Context, exec Executor,
	input models.CreateImportErrorEntryInput,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_IMPORT_ERROR_ENTRIES).
			Columns(
				"id",
				"import_batch_id",
				"org_id",
				"entity_type",
				"external_id",
				"error_code",
				"message",
				"details",
			).
			Values(
				uuid.NewString(),
				input.ImportBatchId,
				input.OrganizationId,
				input.EntityType,
				input.ExternalId,
				input.ErrorCode,
				input.Message,
				input.Details,
			),
	)
}

func (repo *CasetrailDbRepository) ListErrorEntriesOfBatch(ctx context.Context, exec Executor,
	importBatchId string,
) ([]models.ImportErrorEntry, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectImportErrorEntryColumns...).
			From(dbmodels.TABLE_IMPORT_ERROR_ENTRIES).
			Where(squirrel.Eq{"import_batch_id": importBatchId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptImportErrorEntry,
	)
}
