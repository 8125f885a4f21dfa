package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories/dbmodels"
)

func (repo *CasetrailDbRepository) UserById(ctx context.Context, exec Executor,
	userId string,
) (models.User, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return models.User{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectUser...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo *CasetrailDbRepository) ListUsersOfOrganization(ctx context.Context, exec Executor,
	organizationId string,
) ([]models.User, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectUser...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"org_id": organizationId}).
			OrderBy("email"),
		dbmodels.AdaptUser,
	)
}
