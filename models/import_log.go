package models

import "time"

type ImportLogStatus string

const (
	ImportLogSuccess ImportLogStatus = "success"
	ImportLogDeleted ImportLogStatus = "deleted"
)

// ImportLogEntry is an append-only audit record of one successful insert.
// Entries are never mutated, except that rolling back a batch marks its
// entries deleted; they remain as history.
type ImportLogEntry struct {
	Id             string
	ImportBatchId  string
	OrganizationId string
	EntityType     EntityType
	ExternalId     string
	RecordId       string
	Status         ImportLogStatus
	CreatedAt      time.Time
}

type CreateImportLogEntryInput struct {
	ImportBatchId  string
	OrganizationId string
	EntityType     EntityType
	ExternalId     string
	RecordId       string
}

// ImportErrorEntry records a per-record failure during execution.
type ImportErrorEntry struct {
	Id             string
	ImportBatchId  string
	OrganizationId string
	EntityType     EntityType
	ExternalId     string
	ErrorCode      string
	Message        string
	Details        *string
	CreatedAt      time.Time
}

type CreateImportErrorEntryInput struct {
	ImportBatchId  string
	OrganizationId string
	EntityType     EntityType
	ExternalId     string
	ErrorCode      string
	Message        string
	Details        *string
}
