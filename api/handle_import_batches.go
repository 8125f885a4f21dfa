package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrail/casetrail-backend/dto"
	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
	"github.com/casetrail/casetrail-backend/usecases"
	"github.com/casetrail/casetrail-backend/utils"
)

type ImportBatchInput struct {
	Id string `uri:"batch_id" binding:"required,uuid"`
}

func handleListImportBatches(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewImportBatchUsecase()
		batches, err := usecase.ListImportBatches(ctx, organizationId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"import_batches": pure_utils.Map(batches, dto.AdaptImportBatchDto),
		})
	}
}

func handleGetImportBatch(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var input ImportBatchInput
		if err := c.ShouldBindUri(&input); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewImportBatchUsecase()
		batch, err := usecase.GetImportBatch(ctx, organizationId, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"import_batch": dto.AdaptImportBatchDto(batch)})
	}
}

func handleListImportBatchLogs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var input ImportBatchInput
		if err := c.ShouldBindUri(&input); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewImportBatchUsecase()
		entries, err := usecase.ListLogEntries(ctx, organizationId, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"log_entries": pure_utils.Map(entries, dto.AdaptImportLogEntryDto),
		})
	}
}

func handleListImportBatchErrors(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var input ImportBatchInput
		if err := c.ShouldBindUri(&input); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewImportBatchUsecase()
		entries, err := usecase.ListErrorEntries(ctx, organizationId, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error_entries": pure_utils.Map(entries, dto.AdaptImportErrorEntryDto),
		})
	}
}

func handleRollbackImportBatch(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		var input ImportBatchInput
		if err := c.ShouldBindUri(&input); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewImportExecutionUsecase()
		result, err := usecase.Rollback(ctx, organizationId, input.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptRollbackResultDto(result))
	}
}
