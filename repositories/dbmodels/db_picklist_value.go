package dbmodels

import (
	"time"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

type DBPicklistValue struct {
	Id             string    `db:"id"`
	OrganizationId string    `db:"org_id"`
	Kind           string    `db:"kind"`
	Value          string    `db:"value"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_PICKLIST_VALUES = "picklist_values"

var SelectPicklistValueColumns = utils.ColumnList[DBPicklistValue]()

func AdaptPicklistValue(db DBPicklistValue) (models.PicklistValue, error) {
	return models.PicklistValue{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Kind:           models.PicklistKind(db.Kind),
		Value:          db.Value,
		CreatedAt:      db.CreatedAt,
	}, nil
}
