package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

type DBUser struct {
	Id             string      `db:"id"`
	Email          string      `db:"email"`
	OrganizationId string      `db:"org_id"`
	FirstName      null.String `db:"first_name"`
	LastName       null.String `db:"last_name"`
}

const TABLE_USERS = "users"

var ColumnsSelectUser = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		UserId:         models.UserId(db.Id),
		Email:          db.Email,
		OrganizationId: db.OrganizationId,
		FirstName:      db.FirstName.ValueOrZero(),
		LastName:       db.LastName.ValueOrZero(),
	}, nil
}
