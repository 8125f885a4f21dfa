package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

type DBImportBatch struct {
	Id               string    `db:"id"`
	OrganizationId   string    `db:"org_id"`
	CreatedByUserId  string    `db:"created_by_user_id"`
	SourceSystem     string    `db:"source_system"`
	Status           string    `db:"status"`
	TotalRecords     int       `db:"total_records"`
	ProcessedRecords int       `db:"processed_records"`
	FailedRecords    int       `db:"failed_records"`
	CreatedAt        time.Time `db:"created_at"`
	StartedAt        null.Time `db:"started_at"`
	CompletedAt      null.Time `db:"completed_at"`
}

const TABLE_IMPORT_BATCHES = "import_batches"

var SelectImportBatchColumns = utils.ColumnList[DBImportBatch]()

func AdaptImportBatch(db DBImportBatch) (models.ImportBatch, error) {
	return models.ImportBatch{
		Id:               db.Id,
		OrganizationId:   db.OrganizationId,
		CreatedByUserId:  db.CreatedByUserId,
		SourceSystem:     db.SourceSystem,
		Status:           models.ImportBatchStatus(db.Status),
		TotalRecords:     db.TotalRecords,
		ProcessedRecords: db.ProcessedRecords,
		FailedRecords:    db.FailedRecords,
		CreatedAt:        db.CreatedAt,
		StartedAt:        db.StartedAt.Ptr(),
		CompletedAt:      db.CompletedAt.Ptr(),
	}, nil
}
