package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories/dbmodels"
)

func (repo *CasetrailDbRepository) GetOrganizationById(ctx context.Context, exec Executor,
	organizationId string,
) (models.Organization, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return models.Organization{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectOrganization...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			Where(squirrel.Eq{"id": organizationId}),
		dbmodels.AdaptOrganization,
	)
}

func (repo *CasetrailDbRepository) AllOrganizations(ctx context.Context, exec Executor) ([]models.Organization, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectOrganization...).
			From(dbmodels.TABLE_ORGANIZATIONS).
			OrderBy("name"),
		dbmodels.AdaptOrganization,
	)
}
