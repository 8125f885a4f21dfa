package models

import "time"

type ImportBatchStatus string

const (
	ImportBatchPending    ImportBatchStatus = "pending"
	ImportBatchProcessing ImportBatchStatus = "processing"
	ImportBatchCompleted  ImportBatchStatus = "completed"
	ImportBatchFailed     ImportBatchStatus = "failed"
	ImportBatchRolledBack ImportBatchStatus = "rolled_back"
)

func (s ImportBatchStatus) IsTerminal() bool {
	switch s {
	case ImportBatchCompleted, ImportBatchFailed, ImportBatchRolledBack:
		return true
	}
	return false
}

// ImportBatch aggregates all entity types submitted together in one execution
// run. Owned by the organization that initiated it.
type ImportBatch struct {
	Id               string
	OrganizationId   string
	CreatedByUserId  string
	SourceSystem     string
	Status           ImportBatchStatus
	TotalRecords     int
	ProcessedRecords int
	FailedRecords    int
	CreatedAt        time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

type CreateImportBatchInput struct {
	OrganizationId  string
	CreatedByUserId string
	SourceSystem    string
	TotalRecords    int
}

// RollbackResult reports how many rows each entity table lost when a batch
// was rolled back. Counts are partial when a deletion failed midway.
type RollbackResult struct {
	ImportBatchId string
	DeletedCounts map[EntityType]int64
}

type UpdateImportBatchInput struct {
	Id               string
	Status           *ImportBatchStatus
	ProcessedRecords *int
	FailedRecords    *int
}
