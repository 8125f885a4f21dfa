package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casetrail/casetrail-backend/mocks"
	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
)

func TestGetImportBatchOfAnotherOrganization(t *testing.T) {
	repository := new(mocks.ImportRepository)
	repository.On("GetImportBatchById", mock.Anything, "batch-1").
		Return(models.ImportBatch{Id: "batch-1", OrganizationId: "org-b"}, nil)

	uc := NewImportBatchUsecase(executor_factory.NewExecutorFactoryStub(), repository)

	_, err := uc.GetImportBatch(context.Background(), "org-a", "batch-1")
	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestListImportBatchLogsChecksOwnership(t *testing.T) {
	repository := new(mocks.ImportRepository)
	repository.On("GetImportBatchById", mock.Anything, "batch-1").
		Return(models.ImportBatch{Id: "batch-1", OrganizationId: "org-b"}, nil)

	uc := NewImportBatchUsecase(executor_factory.NewExecutorFactoryStub(), repository)

	_, err := uc.ListLogEntries(context.Background(), "org-a", "batch-1")
	assert.ErrorIs(t, err, models.NotFoundError)
	repository.AssertNotCalled(t, "ListLogEntriesOfBatch", mock.Anything, mock.Anything)
}
