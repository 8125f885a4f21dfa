package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/casetrail/casetrail-backend/dto"
	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/usecases"
	"github.com/casetrail/casetrail-backend/utils"
)

const maxImportFileSize = 50 * 1024 * 1024 // 50MB

func readImportFiles(c *gin.Context) ([]models.ImportFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(models.BadParameterError, err.Error())
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return nil, errors.Wrap(models.BadParameterError, "no files uploaded under the \"files\" form key")
	}

	files := make([]models.ImportFile, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		if fileHeader.Size > maxImportFileSize {
			return nil, errors.Wrap(models.BadParameterError,
				fmt.Sprintf("file %s exceeds the size limit", fileHeader.Filename))
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.Wrap(err, "could not open uploaded file "+fileHeader.Filename)
		}
		content, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, errors.Wrap(err, "could not read uploaded file "+fileHeader.Filename)
		}
		if closeErr != nil {
			return nil, errors.Wrap(closeErr, "could not close uploaded file "+fileHeader.Filename)
		}
		files = append(files, models.ImportFile{
			Name:    fileHeader.Filename,
			Content: string(content),
		})
	}
	return files, nil
}

func handleImportDryRun(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		files, err := readImportFiles(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewDryRunUsecase()
		result, err := usecase.DryRun(ctx, organizationId, files)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptDryRunResultDto(result))
	}
}

func handleImportDryRunExport(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		format := c.DefaultQuery("format", "json")
		if format != "csv" && format != "json" {
			presentError(ctx, c, errors.Wrap(models.BadParameterError,
				"format must be csv or json"))
			return
		}

		files, err := readImportFiles(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewDryRunUsecase()
		result, err := usecase.DryRun(ctx, organizationId, files)
		if presentError(ctx, c, err) {
			return
		}

		if format == "json" {
			c.Header("Content-Disposition", `attachment; filename="dry_run_report.json"`)
			c.JSON(http.StatusOK, dto.AdaptDryRunResultDto(result))
			return
		}

		c.Header("Content-Disposition", `attachment; filename="dry_run_report.csv"`)
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := dto.WriteDryRunCsv(c.Writer, result); err != nil {
			utils.LogAndReportSentryError(ctx, err)
		}
	}
}

func handleImportExecute(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		organizationId, err := utils.OrganizationIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}
		userId, err := utils.UserIdFromRequest(c.Request)
		if presentError(ctx, c, err) {
			return
		}

		files, err := readImportFiles(c)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewImportExecutionUsecase()
		batch, err := usecase.ExecuteImport(ctx, usecases.ExecuteImportInput{
			OrganizationId:  organizationId,
			CreatedByUserId: userId,
			SourceSystem:    c.PostForm("source_system"),
			Files:           files,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"import_batch": dto.AdaptImportBatchDto(batch)})
	}
}
