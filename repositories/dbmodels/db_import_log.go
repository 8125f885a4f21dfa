package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/utils"
)

type DBImportLogEntry struct {
	Id             string    `db:"id"`
	ImportBatchId  string    `db:"import_batch_id"`
	OrganizationId string    `db:"org_id"`
	EntityType     string    `db:"entity_type"`
	ExternalId     string    `db:"external_id"`
	RecordId       string    `db:"record_id"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_IMPORT_LOG_ENTRIES = "import_log_entries"

var SelectImportLogEntryColumns = utils.ColumnList[DBImportLogEntry]()

func AdaptImportLogEntry(db DBImportLogEntry) (models.ImportLogEntry, error) {
	return models.ImportLogEntry{
		Id:             db.Id,
		ImportBatchId:  db.ImportBatchId,
		OrganizationId: db.OrganizationId,
		EntityType:     models.EntityType(db.EntityType),
		ExternalId:     db.ExternalId,
		RecordId:       db.RecordId,
		Status:         models.ImportLogStatus(db.Status),
		CreatedAt:      db.CreatedAt,
	}, nil
}

type DBImportErrorEntry struct {
	Id             string      `db:"id"`
	ImportBatchId  string      `db:"import_batch_id"`
	OrganizationId string      `db:"org_id"`
	EntityType     string      `db:"entity_type"`
	ExternalId     string      `db:"external_id"`
	ErrorCode      string      `db:"error_code"`
	Message        string      `db:"message"`
	Details        null.String `db:"details"`
	CreatedAt      time.Time   `db:"created_at"`
}

const TABLE_IMPORT_ERROR_ENTRIES = "import_error_entries"

var SelectImportErrorEntryColumns = utils.ColumnList[DBImportErrorEntry]()

func AdaptImportErrorEntry(db DBImportErrorEntry) (models.ImportErrorEntry, error) {
	return models.ImportErrorEntry{
		Id:             db.Id,
		ImportBatchId:  db.ImportBatchId,
		OrganizationId: db.OrganizationId,
		EntityType:     models.EntityType(db.EntityType),
		ExternalId:     db.ExternalId,
		ErrorCode:      db.ErrorCode,
		Message:        db.Message,
		Details:        db.Details.Ptr(),
		CreatedAt:      db.CreatedAt,
	}, nil
}
