package dbmodels

import (
	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

type DBOrganization struct {
	Id   string `db:"id"`
	Name string `db:"name"`
}

const TABLE_ORGANIZATIONS = "organizations"

var ColumnsSelectOrganization = utils.ColumnList[DBOrganization]()

func AdaptOrganization(db DBOrganization) (models.Organization, error) {
	return models.Organization{
		Id:   db.Id,
		Name: db.Name,
	}, nil
}
