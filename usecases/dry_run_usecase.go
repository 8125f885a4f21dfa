package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
	"github.com/casetrail/casetrail-backend/repositories"
	"github.com/casetrail/casetrail-backend/usecases/executor_factory"
	"github.com/casetrail/casetrail-backend/usecases/importer"
)

type importReferenceRepository interface {
	ListExternalIdsOfEntityType(ctx context.Context, exec repositories.Executor,
		organizationId string, entityType models.EntityType) (*set.Set[string], error)
	ListUsersOfOrganization(ctx context.Context, exec repositories.Executor,
		organizationId string) ([]models.User, error)
	ListPicklistValues(ctx context.Context, exec repositories.Executor,
		organizationId string, kind models.PicklistKind) ([]models.PicklistValue, error)
}

type DryRunUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      importReferenceRepository
}

func NewDryRunUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository importReferenceRepository,
) DryRunUsecase {
	return DryRunUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

// DryRun previews a batch of files without writing anything. The only way it
// fails is when the organization's reference data cannot be loaded: every
// per-file and per-row problem comes back inside the result instead.
func (uc DryRunUsecase) DryRun(ctx context.Context, organizationId string,
	files []models.ImportFile,
) (models.DryRunResult, error) {
	rc, err := loadReferenceContext(ctx, uc.executorFactory.NewExecutor(), uc.repository, organizationId)
	if err != nil {
		return models.DryRunResult{}, err
	}

	return evaluateBatch(importer.ParseFiles(files), rc), nil
}

func loadReferenceContext(ctx context.Context, exec repositories.Executor,
	repository importReferenceRepository, organizationId string,
) (*importer.ReferenceContext, error) {
	rc := importer.NewReferenceContext()

	for _, entityType := range models.EntityImportOrder {
		externalIds, err := repository.ListExternalIdsOfEntityType(ctx, exec, organizationId, entityType)
		if err != nil {
			return nil, errors.Wrap(err, "could not load imported external ids of "+string(entityType))
		}
		rc.Store[entityType] = externalIds
	}

	users, err := repository.ListUsersOfOrganization(ctx, exec, organizationId)
	if err != nil {
		return nil, errors.Wrap(err, "could not load organization members")
	}
	for _, user := range users {
		rc.UsersByEmail[pure_utils.NormalizeEmail(user.Email)] = user.UserId
	}

	for _, kind := range []models.PicklistKind{models.PicklistUpdateType, models.PicklistEventSubtype} {
		values, err := repository.ListPicklistValues(ctx, exec, organizationId, kind)
		if err != nil {
			return nil, errors.Wrap(err, "could not load picklist values of "+string(kind))
		}
		for _, value := range values {
			rc.Picklists[kind] = append(rc.Picklists[kind], value.Value)
		}
	}
	return rc, nil
}

// evaluateBatch is the processing behind both the dry-run preview and the
// execution engine. Files are evaluated in dependency order; a file with
// structural errors contributes its errors but none of its rows. A row's
// external id only starts resolving blocking references once the row itself is
// classified for creation: evaluating in dependency order guarantees every
// referent type is fully settled before its referencing rows run.
func evaluateBatch(files []models.ParsedFile, rc *importer.ReferenceContext) models.DryRunResult {
	start := time.Now()
	result := models.DryRunResult{
		Timestamp:        start,
		NormalizationLog: make(map[string]int),
	}

	importer.RegisterPendingIds(files, rc)

	// external ids are unique per entity type across the whole batch, so
	// the dedup map is shared between files of the same type
	seenByEntityType := make(map[models.EntityType]map[string]int)

	for _, file := range orderFiles(files) {
		result.Errors = append(result.Errors, file.Errors...)
		result.Warnings = append(result.Warnings, file.Warnings...)
		if !file.IsValid() {
			continue
		}

		schema, ok := importer.SchemaFor(file.EntityType)
		if !ok {
			continue
		}

		seen := seenByEntityType[file.EntityType]
		if seen == nil {
			seen = make(map[string]int)
			seenByEntityType[file.EntityType] = seen
		}
		for i, row := range file.Rows {
			detail := importer.ProcessRecord(schema, row, importer.RecordContext{
				FileName: file.FileName,
				// row 1 is the header line
				RowNumber:       i + 2,
				SeenExternalIds: seen,
				References:      rc,
			})
			if detail.Operation == models.ImportOperationCreate && detail.ExternalId != "" {
				rc.AddToBatch(file.EntityType, detail.ExternalId)
			}

			result.TotalRecords++
			switch detail.Operation {
			case models.ImportOperationCreate:
				result.RecordsToCreate++
			case models.ImportOperationUpdate:
				result.RecordsToUpdate++
			case models.ImportOperationSkip:
				result.RecordsToSkip++
			}
			for _, change := range detail.Changes {
				result.NormalizationLog[change.Rule]++
			}
			result.Errors = append(result.Errors, detail.Errors...)
			result.Warnings = append(result.Warnings, detail.Warnings...)
			result.Details = append(result.Details, detail)
		}
	}

	result.Success = len(result.Errors) == 0
	result.Duration = time.Since(start)
	return result
}

// orderFiles sorts parsed files by entity dependency order, keeping
// unclassified files (carrying their structural errors) at the end.
func orderFiles(files []models.ParsedFile) []models.ParsedFile {
	ordered := make([]models.ParsedFile, 0, len(files))
	for _, entityType := range models.EntityImportOrder {
		for _, file := range files {
			if file.EntityType == entityType {
				ordered = append(ordered, file)
			}
		}
	}
	for _, file := range files {
		if file.EntityType == "" {
			ordered = append(ordered, file)
		}
	}
	return ordered
}
