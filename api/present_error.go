package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    err.Error(),
			"error_code": "bad_parameter",
		})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":    err.Error(),
			"error_code": "unauthorized",
		})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{
			"message":    err.Error(),
			"error_code": "forbidden",
		})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{
			"message":    err.Error(),
			"error_code": "not_found",
		})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{
			"message":    err.Error(),
			"error_code": "conflict",
		})
	case errors.Is(err, models.ErrNoRecordsToImport):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    err.Error(),
			"error_code": "no_records_to_import",
		})
	case errors.Is(err, models.ErrImportBatchNotTerminal):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    err.Error(),
			"error_code": "import_batch_not_terminal",
		})
	case errors.Is(err, models.ErrImportBatchAlreadyRolledBack):
		c.JSON(http.StatusConflict, gin.H{
			"message":    err.Error(),
			"error_code": "import_batch_already_rolled_back",
		})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":    "an unexpected error occurred",
			"error_code": "internal_error",
		})
	}
	return true
}
