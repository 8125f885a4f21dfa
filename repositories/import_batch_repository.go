package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories/dbmodels"
)

func (repo *CasetrailDbRepository) CreateImportBatch(ctx context.Context, exec Executor,
	input models.CreateImportBatchInput, newImportBatchId string,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_IMPORT_BATCHES).
			Columns(
				"id",
				"org_id",
				"created_by_user_id",
				"source_system",
				"status",
				"total_records",
			).
			Values(
				newImportBatchId,
				input.OrganizationId,
				input.CreatedByUserId,
				input.SourceSystem,
				models.ImportBatchPending,
				input.TotalRecords,
			),
	)
}

func (repo *CasetrailDbRepository) GetImportBatchById(ctx context.Context, exec Executor,
	importBatchId string,
) (models.ImportBatch, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return models.ImportBatch{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectImportBatchColumns...).
			From(dbmodels.TABLE_IMPORT_BATCHES).
			Where(squirrel.Eq{"id": importBatchId}),
		dbmodels.AdaptImportBatch,
	)
}

func (repo *CasetrailDbRepository) ListImportBatchesOfOrganization(ctx context.Context,
	exec Executor, organizationId string,
) ([]models.ImportBatch, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectImportBatchColumns...).
			From(dbmodels.TABLE_IMPORT_BATCHES).
			Where(squirrel.Eq{"org_id": organizationId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptImportBatch,
	)
}

func (repo *CasetrailDbRepository) UpdateImportBatch(ctx context.Context, exec Executor,
	input models.UpdateImportBatchInput,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	query := NewQueryBuilder().Update(dbmodels.TABLE_IMPORT_BATCHES)

	if input.Status != nil {
		query = query.Set("status", *input.Status)
		switch *input.Status {
		case models.ImportBatchProcessing:
			query = query.Set("started_at", squirrel.Expr("now()"))
		case models.ImportBatchCompleted, models.ImportBatchFailed:
			query = query.Set("completed_at", squirrel.Expr("now()"))
		}
	}
	if input.ProcessedRecords != nil {
		query = query.Set("processed_records", *input.ProcessedRecords)
	}
	if input.FailedRecords != nil {
		query = query.Set("failed_records", *input.FailedRecords)
	}

	return ExecBuilder(ctx, exec, query.Where(squirrel.Eq{"id": input.Id}))
}
