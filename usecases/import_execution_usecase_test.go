package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/casetrail/casetrail-backend/mocks"
	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
)

type ImportExecutionTestSuite struct {
	suite.Suite
	repository *mocks.ImportRepository

	organizationId string
	userId         string
	importBatchId  string
}

func (suite *ImportExecutionTestSuite) SetupTest() {
	suite.repository = new(mocks.ImportRepository)
	suite.organizationId = "25ab6323-1657-4a52-923a-ef6983fe4532"
	suite.userId = "0ae6fda7-f7b3-4218-9fc3-4efa329432a7"
	suite.importBatchId = "5b0bf1af-b3ef-4381-a604-93ed06372f33"
}

func (suite *ImportExecutionTestSuite) makeUsecase() ImportExecutionUsecase {
	return NewImportExecutionUsecase(executor_factory.NewExecutorFactoryStub(), suite.repository)
}

func (suite *ImportExecutionTestSuite) expectEmptyReferenceData() {
	suite.repository.On("ListExternalIdsOfEntityType", mock.Anything, suite.organizationId, mock.Anything).
		Return(set.New[string](0), nil)
	suite.repository.On("ListUsersOfOrganization", mock.Anything, suite.organizationId).
		Return([]models.User{}, nil)
	suite.repository.On("ListPicklistValues", mock.Anything, suite.organizationId, mock.Anything).
		Return([]models.PicklistValue{}, nil)
}

func (suite *ImportExecutionTestSuite) TestExecuteImportContinuesOnRecordFailure() {
	suite.expectEmptyReferenceData()

	suite.repository.On("CreateImportBatch", mock.Anything,
		mock.MatchedBy(func(input models.CreateImportBatchInput) bool {
			return input.OrganizationId == suite.organizationId && input.TotalRecords == 2
		}), mock.Anything).Return(nil).Once()
	suite.repository.On("UpdateImportBatch", mock.Anything,
		mock.MatchedBy(func(input models.UpdateImportBatchInput) bool {
			return input.Status != nil && *input.Status == models.ImportBatchProcessing
		})).Return(nil).Once()

	// the first record fails, the second goes through
	suite.repository.On("InsertImportedRecord", mock.Anything, models.EntityTypeClient,
		mock.Anything, mock.Anything).Return("", errors.New("insert failed")).Once()
	suite.repository.On("InsertImportedRecord", mock.Anything, models.EntityTypeClient,
		mock.Anything, mock.Anything).Return("rec-2", nil).Once()

	suite.repository.On("CreateImportErrorEntry", mock.Anything,
		mock.MatchedBy(func(input models.CreateImportErrorEntryInput) bool {
			return input.ExternalId == "ACC-1" && input.ErrorCode == "internal_error"
		})).Return(nil).Once()
	suite.repository.On("CreateImportLogEntry", mock.Anything,
		mock.MatchedBy(func(input models.CreateImportLogEntryInput) bool {
			return input.ExternalId == "ACC-2" && input.RecordId == "rec-2"
		})).Return(nil).Once()

	// the batch ends up failed: completed is reserved for fully clean runs
	suite.repository.On("UpdateImportBatch", mock.Anything,
		mock.MatchedBy(func(input models.UpdateImportBatchInput) bool {
			return input.Status != nil && *input.Status == models.ImportBatchFailed &&
				input.ProcessedRecords != nil && *input.ProcessedRecords == 1 &&
				input.FailedRecords != nil && *input.FailedRecords == 1
		})).Return(nil).Once()

	failedBatch := models.ImportBatch{
		OrganizationId:   suite.organizationId,
		Status:           models.ImportBatchFailed,
		TotalRecords:     2,
		ProcessedRecords: 1,
		FailedRecords:    1,
	}
	suite.repository.On("GetImportBatchById", mock.Anything, mock.Anything).
		Return(failedBatch, nil).Once()

	batch, err := suite.makeUsecase().ExecuteImport(context.Background(), ExecuteImportInput{
		OrganizationId:  suite.organizationId,
		CreatedByUserId: suite.userId,
		SourceSystem:    "legacy_crm",
		Files: []models.ImportFile{{
			Name:    "02_clients.csv",
			Content: "external_account_id,name\nACC-1,Acme\nACC-2,Other\n",
		}},
	})

	suite.NoError(err)
	suite.Equal(failedBatch, batch)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *ImportExecutionTestSuite) TestExecuteImportWithoutCreatableRecords() {
	// every submitted record already exists, so they all classify as updates
	suite.repository.On("ListExternalIdsOfEntityType", mock.Anything, suite.organizationId,
		models.EntityTypeClient).Return(set.From([]string{"ACC-1"}), nil)
	suite.repository.On("ListExternalIdsOfEntityType", mock.Anything, suite.organizationId,
		mock.Anything).Return(set.New[string](0), nil)
	suite.repository.On("ListUsersOfOrganization", mock.Anything, suite.organizationId).
		Return([]models.User{}, nil)
	suite.repository.On("ListPicklistValues", mock.Anything, suite.organizationId, mock.Anything).
		Return([]models.PicklistValue{}, nil)

	_, err := suite.makeUsecase().ExecuteImport(context.Background(), ExecuteImportInput{
		OrganizationId: suite.organizationId,
		Files: []models.ImportFile{{
			Name:    "02_clients.csv",
			Content: "external_account_id,name\nACC-1,Acme\n",
		}},
	})

	suite.ErrorIs(err, models.ErrNoRecordsToImport)
	suite.repository.AssertNotCalled(suite.T(), "CreateImportBatch",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImportExecutionTestSuite) TestExecuteImportExtendsPicklists() {
	suite.expectEmptyReferenceData()

	suite.repository.On("CreateImportBatch", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
	suite.repository.On("UpdateImportBatch", mock.Anything, mock.Anything).Return(nil)
	// the misspelled value on the second row fuzzy-matches the value created
	// for the first row, so only one picklist value is inserted
	suite.repository.On("CreatePicklistValue", mock.Anything,
		mock.MatchedBy(func(input models.CreatePicklistValueInput) bool {
			return input.Kind == models.PicklistUpdateType && input.Value == "Field Report"
		})).Return(nil).Once()
	suite.repository.On("InsertImportedRecord", mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return("rec-1", nil)
	suite.repository.On("CreateImportLogEntry", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetImportBatchById", mock.Anything, mock.Anything).
		Return(models.ImportBatch{Status: models.ImportBatchCompleted}, nil)

	_, err := suite.makeUsecase().ExecuteImport(context.Background(), ExecuteImportInput{
		OrganizationId: suite.organizationId,
		Files: []models.ImportFile{
			{
				Name:    "04_cases.csv",
				Content: "external_case_id,title,status\nCASE-1,Surveillance,open\n",
			},
			{
				Name: "07_updates.csv",
				Content: "external_update_id,external_case_id,update_text,update_type\n" +
					"UPD-1,CASE-1,note one,Field Report\n" +
					"UPD-2,CASE-1,note two,Field Reprot\n",
			},
		},
	})

	suite.NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *ImportExecutionTestSuite) TestRollback() {
	suite.repository.On("GetImportBatchById", mock.Anything, suite.importBatchId).
		Return(models.ImportBatch{
			Id:             suite.importBatchId,
			OrganizationId: suite.organizationId,
			Status:         models.ImportBatchCompleted,
		}, nil).Once()

	var deletionOrder []models.EntityType
	for _, entityType := range models.EntityImportOrder {
		entityType := entityType
		var count int64
		if entityType == models.EntityTypeClient {
			count = 2
		}
		if entityType == models.EntityTypeCase {
			count = 1
		}
		suite.repository.On("DeleteImportedRecords", mock.Anything, suite.organizationId,
			entityType, suite.importBatchId).
			Run(func(args mock.Arguments) {
				deletionOrder = append(deletionOrder, entityType)
			}).Return(count, nil).Once()
	}
	suite.repository.On("MarkLogEntriesDeleted", mock.Anything, suite.importBatchId).
		Return(nil).Once()
	suite.repository.On("UpdateImportBatch", mock.Anything,
		mock.MatchedBy(func(input models.UpdateImportBatchInput) bool {
			return input.Status != nil && *input.Status == models.ImportBatchRolledBack
		})).Return(nil).Once()

	result, err := suite.makeUsecase().Rollback(context.Background(),
		suite.organizationId, suite.importBatchId)

	suite.NoError(err)
	suite.Equal(map[models.EntityType]int64{
		models.EntityTypeClient: 2,
		models.EntityTypeCase:   1,
	}, result.DeletedCounts)

	// deletion walks the dependency order in reverse
	for i, entityType := range deletionOrder {
		suite.Equal(models.EntityImportOrder[len(models.EntityImportOrder)-1-i], entityType)
	}
	suite.repository.AssertExpectations(suite.T())
}

func (suite *ImportExecutionTestSuite) TestRollbackOfAnotherOrganizationsBatch() {
	suite.repository.On("GetImportBatchById", mock.Anything, suite.importBatchId).
		Return(models.ImportBatch{
			Id:             suite.importBatchId,
			OrganizationId: "some other org",
			Status:         models.ImportBatchCompleted,
		}, nil).Once()

	_, err := suite.makeUsecase().Rollback(context.Background(),
		suite.organizationId, suite.importBatchId)

	suite.ErrorIs(err, models.NotFoundError)
}

func (suite *ImportExecutionTestSuite) TestRollbackOfRunningBatch() {
	suite.repository.On("GetImportBatchById", mock.Anything, suite.importBatchId).
		Return(models.ImportBatch{
			Id:             suite.importBatchId,
			OrganizationId: suite.organizationId,
			Status:         models.ImportBatchProcessing,
		}, nil).Once()

	_, err := suite.makeUsecase().Rollback(context.Background(),
		suite.organizationId, suite.importBatchId)

	suite.ErrorIs(err, models.ErrImportBatchNotTerminal)
}

func (suite *ImportExecutionTestSuite) TestRollbackTwice() {
	suite.repository.On("GetImportBatchById", mock.Anything, suite.importBatchId).
		Return(models.ImportBatch{
			Id:             suite.importBatchId,
			OrganizationId: suite.organizationId,
			Status:         models.ImportBatchRolledBack,
		}, nil).Once()

	_, err := suite.makeUsecase().Rollback(context.Background(),
		suite.organizationId, suite.importBatchId)

	suite.ErrorIs(err, models.ErrImportBatchAlreadyRolledBack)
}

func (suite *ImportExecutionTestSuite) TestRollbackInterruptedByDeletionFailure() {
	suite.repository.On("GetImportBatchById", mock.Anything, suite.importBatchId).
		Return(models.ImportBatch{
			Id:             suite.importBatchId,
			OrganizationId: suite.organizationId,
			Status:         models.ImportBatchCompleted,
		}, nil).Once()

	suite.repository.On("DeleteImportedRecords", mock.Anything, suite.organizationId,
		models.EntityTypeBudgetAdjustment, suite.importBatchId).
		Return(int64(3), nil).Once()
	suite.repository.On("DeleteImportedRecords", mock.Anything, suite.organizationId,
		models.EntityTypeBudget, suite.importBatchId).
		Return(int64(0), errors.New("connection reset")).Once()

	result, err := suite.makeUsecase().Rollback(context.Background(),
		suite.organizationId, suite.importBatchId)

	suite.ErrorContains(err, "rollback interrupted on budget")
	// the counts report how far the rollback got before it failed
	suite.Equal(map[models.EntityType]int64{
		models.EntityTypeBudgetAdjustment: 3,
	}, result.DeletedCounts)
	suite.repository.AssertNotCalled(suite.T(), "MarkLogEntriesDeleted",
		mock.Anything, mock.Anything)
	suite.repository.AssertNotCalled(suite.T(), "UpdateImportBatch",
		mock.Anything, mock.Anything)
}

func TestImportExecutionTestSuite(t *testing.T) {
	suite.Run(t, new(ImportExecutionTestSuite))
}
