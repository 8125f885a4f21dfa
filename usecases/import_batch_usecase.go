package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
)

type importBatchRepository interface {
	GetImportBatchById(ctx context.Context, exec repositories.Executor,
		importBatchId string) (models.ImportBatch, error)
	ListImportBatchesOfOrganization(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.ImportBatch, error)
	ListLogEntriesOfBatch(ctx context.Context, exec repositories.Executor,
		importBatchId string) ([]models.ImportLogEntry, error)
	ListErrorEntriesOfBatch(ctx context.Context, exec repositories.Executor,
		importBatchId string) ([]models.ImportErrorEntry, error)
}

type ImportBatchUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      importBatchRepository
}

func NewImportBatchUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository importBatchRepository,
) ImportBatchUsecase {
	return ImportBatchUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (uc ImportBatchUsecase) GetImportBatch(ctx context.Context, organizationId string,
	importBatchId string,
) (models.ImportBatch, error) {
	batch, err := uc.repository.GetImportBatchById(ctx, uc.executorFactory.NewExecutor(), importBatchId)
	if err != nil {
		return models.ImportBatch{}, err
	}
	if batch.OrganizationId != organizationId {
		return models.ImportBatch{}, errors.WithStack(models.NotFoundError)
	}
	return batch, nil
}

func (uc ImportBatchUsecase) ListImportBatches(ctx context.Context, organizationId string) ([]models.ImportBatch, error) {
	return uc.repository.ListImportBatchesOfOrganization(ctx, uc.executorFactory.NewExecutor(), organizationId)
}

func (uc ImportBatchUsecase) ListLogEntries(ctx context.Context, organizationId string,
	importBatchId string,
) ([]models.ImportLogEntry, error) {
	if _, err := uc.GetImportBatch(ctx, organizationId, importBatchId); err != nil {
		return nil, err
	}
	return uc.repository.ListLogEntriesOfBatch(ctx, uc.executorFactory.NewExecutor(), importBatchId)
}

func (uc ImportBatchUsecase) ListErrorEntries(ctx context.Context, organizationId string,
	importBatchId string,
) ([]models.ImportErrorEntry, error) {
	if _, err := uc.GetImportBatch(ctx, organizationId, importBatchId); err != nil {
		return nil, err
	}
	return uc.repository.ListErrorEntriesOfBatch(ctx, uc.executorFactory.NewExecutor(), importBatchId)
}
