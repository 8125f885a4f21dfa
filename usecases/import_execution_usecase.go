package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
	"github.com/casetrail/casetrail-backend/repositories"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
	"github.com/casetrail/casetrail-backend/usecases/importer"
	"github.com/casetrail/casetrail-backend/utils"
)

type importExecutionRepository interface {
	importReferenceRepository

	CreateImportBatch(ctx context.Context, exec repositories.Executor,
		input models.CreateImportBatchInput, newImportBatchId string) error
	UpdateImportBatch(ctx context.Context, exec repositories.Executor,
		input models.UpdateImportBatchInput) error
	GetImportBatchById(ctx context.Context, exec repositories.Executor,
		importBatchId string) (models.ImportBatch, error)
	InsertImportedRecord(ctx context.Context, exec repositories.Executor,
		entityType models.EntityType, values map[string]any,
		provenance repositories.RecordProvenance) (string, error)
	CreateImportLogEntry(ctx context.Context, exec repositories.Executor,
		input models.CreateImportLogEntryInput) error
	CreateImportErrorEntry(ctx context.Context, exec repositories.Executor,
		input models.CreateImportErrorEntryInput) error
	ListLogEntriesOfBatch(ctx context.Context, exec repositories.Executor,
		importBatchId string) ([]models.ImportLogEntry, error)
	MarkLogEntriesDeleted(ctx context.Context, exec repositories.Executor,
		importBatchId string) error
	DeleteImportedRecords(ctx context.Context, exec repositories.Executor,
		organizationId string, entityType models.EntityType, importBatchId string) (int64, error)
	CreatePicklistValue(ctx context.Context, exec repositories.Executor,
		input models.CreatePicklistValueInput) error
}

type ImportExecutionUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      importExecutionRepository
}

func NewImportExecutionUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository importExecutionRepository,
) ImportExecutionUsecase {
	return ImportExecutionUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

type ExecuteImportInput struct {
	OrganizationId  string
	CreatedByUserId string
	SourceSystem    string
	Files           []models.ImportFile
}

// ExecuteImport runs the same evaluation as the dry run, then replays every
// record classified as a create, in dependency order. Individual record
// failures are recorded and skipped over, but any failed record leaves the
// batch in the failed state once the run finishes; completed means every
// record was written.
func (uc ImportExecutionUsecase) ExecuteImport(ctx context.Context,
	input ExecuteImportInput,
) (models.ImportBatch, error) {
	logger := utils.LoggerFromContext(ctx)
	exec := uc.executorFactory.NewExecutor()

	rc, err := loadReferenceContext(ctx, exec, uc.repository, input.OrganizationId)
	if err != nil {
		return models.ImportBatch{}, err
	}

	result := evaluateBatch(importer.ParseFiles(input.Files), rc)
	if result.RecordsToCreate == 0 {
		return models.ImportBatch{}, errors.WithStack(models.ErrNoRecordsToImport)
	}

	importBatchId := uuid.NewString()
	err = uc.repository.CreateImportBatch(ctx, exec, models.CreateImportBatchInput{
		OrganizationId:  input.OrganizationId,
		CreatedByUserId: input.CreatedByUserId,
		SourceSystem:    input.SourceSystem,
		TotalRecords:    result.RecordsToCreate,
	}, importBatchId)
	if err != nil {
		return models.ImportBatch{}, err
	}
	if err := uc.setBatchStatus(ctx, exec, importBatchId, models.ImportBatchProcessing); err != nil {
		return models.ImportBatch{}, err
	}

	processed, failed := 0, 0
	for _, entityType := range models.EntityImportOrder {
		schema, ok := importer.SchemaFor(entityType)
		if !ok {
			continue
		}
		for _, detail := range result.Details {
			if detail.EntityType != entityType || detail.Operation != models.ImportOperationCreate {
				continue
			}

			if err := uc.createPicklistValues(ctx, exec, input.OrganizationId, schema, detail, rc); err != nil {
				return uc.failBatch(ctx, exec, importBatchId, processed, failed, err)
			}

			recordId, err := uc.repository.InsertImportedRecord(ctx, exec, entityType,
				importer.InsertableValues(schema, detail, rc),
				repositories.RecordProvenance{
					OrganizationId:     input.OrganizationId,
					ImportBatchId:      importBatchId,
					ExternalRecordId:   detail.ExternalId,
					ExternalSystemName: input.SourceSystem,
				})
			if err != nil {
				failed++
				logger.WarnContext(ctx, "failed to import record",
					"entity_type", entityType,
					"external_id", detail.ExternalId,
					"error", err.Error())
				errorEntryErr := uc.repository.CreateImportErrorEntry(ctx, exec,
					models.CreateImportErrorEntryInput{
						ImportBatchId:  importBatchId,
						OrganizationId: input.OrganizationId,
						EntityType:     entityType,
						ExternalId:     detail.ExternalId,
						ErrorCode:      repositories.PgErrorCode(err),
						Message:        fmt.Sprintf("could not insert %s %q", entityType, detail.ExternalId),
						Details:        pure_utils.CleanString(err.Error()),
					})
				if errorEntryErr != nil {
					return uc.failBatch(ctx, exec, importBatchId, processed, failed, errorEntryErr)
				}
				continue
			}

			processed++
			err = uc.repository.CreateImportLogEntry(ctx, exec, models.CreateImportLogEntryInput{
				ImportBatchId:  importBatchId,
				OrganizationId: input.OrganizationId,
				EntityType:     entityType,
				ExternalId:     detail.ExternalId,
				RecordId:       recordId,
			})
			if err != nil {
				return uc.failBatch(ctx, exec, importBatchId, processed, failed, err)
			}
		}
	}

	// completed is reserved for batches where every record made it in
	status := models.ImportBatchCompleted
	if failed > 0 {
		status = models.ImportBatchFailed
	}
	err = uc.repository.UpdateImportBatch(ctx, exec, models.UpdateImportBatchInput{
		Id:               importBatchId,
		Status:           &status,
		ProcessedRecords: &processed,
		FailedRecords:    &failed,
	})
	if err != nil {
		return models.ImportBatch{}, err
	}

	logger.InfoContext(ctx, "import batch finished",
		"import_batch_id", importBatchId,
		"status", status,
		"processed", processed,
		"failed", failed)
	return uc.repository.GetImportBatchById(ctx, exec, importBatchId)
}

// Rollback deletes every record a terminal batch created, in reverse
// dependency order. The batch only moves to rolled_back when every deletion
// succeeded; log entries stay behind, marked deleted.
func (uc ImportExecutionUsecase) Rollback(ctx context.Context, organizationId string,
	importBatchId string,
) (models.RollbackResult, error) {
	logger := utils.LoggerFromContext(ctx)
	exec := uc.executorFactory.NewExecutor()
	result := models.RollbackResult{
		ImportBatchId: importBatchId,
		DeletedCounts: make(map[models.EntityType]int64),
	}

	batch, err := uc.repository.GetImportBatchById(ctx, exec, importBatchId)
	if err != nil {
		return result, err
	}
	if batch.OrganizationId != organizationId {
		return result, errors.WithStack(models.NotFoundError)
	}
	if batch.Status == models.ImportBatchRolledBack {
		return result, errors.WithStack(models.ErrImportBatchAlreadyRolledBack)
	}
	if !batch.Status.IsTerminal() {
		return result, errors.WithStack(models.ErrImportBatchNotTerminal)
	}

	for i := len(models.EntityImportOrder) - 1; i >= 0; i-- {
		entityType := models.EntityImportOrder[i]
		count, err := uc.repository.DeleteImportedRecords(ctx, exec, organizationId, entityType, importBatchId)
		if err != nil {
			// the batch keeps its terminal status; counts tell the
			// operator how far the rollback got
			return result, errors.Wrap(err, "rollback interrupted on "+string(entityType))
		}
		if count > 0 {
			result.DeletedCounts[entityType] = count
			logger.InfoContext(ctx, "rolled back imported records",
				"import_batch_id", importBatchId,
				"entity_type", entityType,
				"deleted", count)
		}
	}

	if err := uc.repository.MarkLogEntriesDeleted(ctx, exec, importBatchId); err != nil {
		return result, err
	}
	if err := uc.setBatchStatus(ctx, exec, importBatchId, models.ImportBatchRolledBack); err != nil {
		return result, err
	}
	return result, nil
}

func (uc ImportExecutionUsecase) setBatchStatus(ctx context.Context, exec repositories.Executor,
	importBatchId string, status models.ImportBatchStatus,
) error {
	return uc.repository.UpdateImportBatch(ctx, exec, models.UpdateImportBatchInput{
		Id:     importBatchId,
		Status: &status,
	})
}

func (uc ImportExecutionUsecase) failBatch(ctx context.Context, exec repositories.Executor,
	importBatchId string, processed, failed int, cause error,
) (models.ImportBatch, error) {
	utils.LogAndReportSentryError(ctx, cause)

	status := models.ImportBatchFailed
	err := uc.repository.UpdateImportBatch(ctx, exec, models.UpdateImportBatchInput{
		Id:               importBatchId,
		Status:           &status,
		ProcessedRecords: &processed,
		FailedRecords:    &failed,
	})
	if err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx,
			"could not mark import batch as failed",
			"import_batch_id", importBatchId,
			"error", err.Error())
	}
	return models.ImportBatch{}, cause
}

// createPicklistValues extends the organization's picklists with any new
// values the record carries, so later records in the same run match exactly.
func (uc ImportExecutionUsecase) createPicklistValues(ctx context.Context,
	exec repositories.Executor, organizationId string, schema importer.EntitySchema,
	detail models.RecordDetail, rc *importer.ReferenceContext,
) error {
	for kind, values := range importer.NewPicklistValues(schema, detail, rc) {
		for _, value := range values {
			err := uc.repository.CreatePicklistValue(ctx, exec, models.CreatePicklistValueInput{
				OrganizationId: organizationId,
				Kind:           kind,
				Value:          value,
			})
			if err != nil {
				return err
			}
			rc.Picklists[kind] = append(rc.Picklists[kind], value)
		}
	}
	return nil
}
