package mocks

import (
	"context"

	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/mock"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories"
)

type ImportRepository struct {
	mock.Mock
}

func (r *ImportRepository) ListExternalIdsOfEntityType(ctx context.Context, exec repositories.Executor,
	organizationId string, entityType models.EntityType,
) (*set.Set[string], error) {
	args := r.Called(exec, organizationId, entityType)
	return args.Get(0).(*set.Set[string]), args.Error(1)
}

func (r *ImportRepository) ListUsersOfOrganization(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.User, error) {
	args := r.Called(exec, organizationId)
	return args.Get(0).([]models.User), args.Error(1)
}

func (r *ImportRepository) ListPicklistValues(ctx context.Context, exec repositories.Executor,
	organizationId string, kind models.PicklistKind,
) ([]models.PicklistValue, error) {
	args := r.Called(exec, organizationId, kind)
	return args.Get(0).([]models.PicklistValue), args.Error(1)
}

func (r *ImportRepository) CreateImportBatch(ctx context.Context, exec repositories.Executor,
	input models.CreateImportBatchInput, newImportBatchId string,
) error {
	args := r.Called(exec, input, newImportBatchId)
	return args.Error(0)
}

func (r *ImportRepository) UpdateImportBatch(ctx context.Context, exec repositories.Executor,
	input models.UpdateImportBatchInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}

func (r *ImportRepository) GetImportBatchById(ctx context.Context, exec repositories.Executor,
	importBatchId string,
) (models.ImportBatch, error) {
	args := r.Called(exec, importBatchId)
	return args.Get(0).(models.ImportBatch), args.Error(1)
}

func (r *ImportRepository) ListImportBatchesOfOrganization(ctx context.Context, exec repositories.Executor,
	organizationId string,
) ([]models.ImportBatch, error) {
	args := r.Called(exec, organizationId)
	return args.Get(0).([]models.ImportBatch), args.Error(1)
}

func (r *ImportRepository) InsertImportedRecord(ctx context.Context, exec repositories.Executor,
	entityType models.EntityType, values map[string]any, provenance repositories.RecordProvenance,
) (string, error) {
	args := r.Called(exec, entityType, values, provenance)
	return args.String(0), args.Error(1)
}

func (r *ImportRepository) CreateImportLogEntry(ctx context.Context, exec repositories.Executor,
	input models.CreateImportLogEntryInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}

func (r *ImportRepository) CreateImportErrorEntry(ctx context.Context, exec repositories.Executor,
	input models.CreateImportErrorEntryInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}

func (r *ImportRepository) ListLogEntriesOfBatch(ctx context.Context, exec repositories.Executor,
	importBatchId string,
) ([]models.ImportLogEntry, error) {
	args := r.Called(exec, importBatchId)
	return args.Get(0).([]models.ImportLogEntry), args.Error(1)
}

func (r *ImportRepository) ListErrorEntriesOfBatch(ctx context.Context, exec repositories.Executor,
	importBatchId string,
) ([]models.ImportErrorEntry, error) {
	args := r.Called(exec, importBatchId)
	return args.Get(0).([]models.ImportErrorEntry), args.Error(1)
}

func (r *ImportRepository) MarkLogEntriesDeleted(ctx context.Context, exec repositories.Executor,
	importBatchId string,
) error {
	args := r.Called(exec, importBatchId)
	return args.Error(0)
}

func (r *ImportRepository) DeleteImportedRecords(ctx context.Context, exec repositories.Executor,
	organizationId string, entityType models.EntityType, importBatchId string,
) (int64, error) {
	args := r.Called(exec, organizationId, entityType, importBatchId)
	return args.Get(0).(int64), args.Error(1)
}

func (r *ImportRepository) CreatePicklistValue(ctx context.Context, exec repositories.Executor,
	input models.CreatePicklistValueInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}
