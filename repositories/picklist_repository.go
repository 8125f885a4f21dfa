package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/repositories/dbmodels"
)

func (repo *CasetrailDbRepository) ListPicklistValues(ctx context.Context, exec Executor,
	organizationId string, kind models.PicklistKind,
) ([]models.PicklistValue, error) {
	if err := validateAppDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPicklistValueColumns...).
			From(dbmodels.TABLE_PICKLIST_VALUES).
			Where(squirrel.Eq{
				"org_id": organizationId,
				"kind":   kind,
			}).
			OrderBy("value"),
		dbmodels.AdaptPicklistValue,
	)
}

func (repo *CasetrailDbRepository) CreatePicklistValue(ctx context.Context, exec Executor,
	input models.CreatePicklistValueInput,
) error {
	if err := validateAppDbExecutor(exec); err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_PICKLIST_VALUES).
			Columns("id", "org_id", "kind", "value").
			Values(uuid.NewString(), input.OrganizationId, input.Kind, input.Value).
			Suffix("ON CONFLICT (org_id, kind, value) DO NOTHING"),
	)
}
