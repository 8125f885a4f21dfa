package dto

import (
	"time"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

type ImportBatchDto struct {
	Id               string     `json:"id"`
	OrganizationId   string     `json:"organization_id"`
	CreatedByUserId  string     `json:"created_by_user_id"`
	SourceSystem     string     `json:"source_system"`
	Status           string     `json:"status"`
	TotalRecords     int        `json:"total_records"`
	ProcessedRecords int        `json:"processed_records"`
	FailedRecords    int        `json:"failed_records"`
	CreatedAt        time.Time  `json:"created_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func AdaptImportBatchDto(batch models.ImportBatch) ImportBatchDto {
	return ImportBatchDto{
		Id:               batch.Id,
		OrganizationId:   batch.OrganizationId,
		CreatedByUserId:  batch.CreatedByUserId,
		SourceSystem:     batch.SourceSystem,
		Status:           string(batch.Status),
		TotalRecords:     batch.TotalRecords,
		ProcessedRecords: batch.ProcessedRecords,
		FailedRecords:    batch.FailedRecords,
		CreatedAt:        batch.CreatedAt,
		StartedAt:        batch.StartedAt,
		CompletedAt:      batch.CompletedAt,
	}
}

type ImportLogEntryDto struct {
	Id            string    `json:"id"`
	ImportBatchId string    `json:"import_batch_id"`
	EntityType    string    `json:"entity_type"`
	ExternalId    string    `json:"external_id"`
	RecordId      string    `json:"record_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptImportLogEntryDto(entry models.ImportLogEntry) ImportLogEntryDto {
	return ImportLogEntryDto{
		Id:            entry.Id,
		ImportBatchId: entry.ImportBatchId,
		EntityType:    string(entry.EntityType),
		ExternalId:    entry.ExternalId,
		RecordId:      entry.RecordId,
		Status:        string(entry.Status),
		CreatedAt:     entry.CreatedAt,
	}
}

type ImportErrorEntryDto struct {
	Id            string    `json:"id"`
	ImportBatchId string    `json:"import_batch_id"`
	EntityType    string    `json:"entity_type"`
	ExternalId    string    `json:"external_id"`
	ErrorCode     string    `json:"error_code"`
	Message       string    `json:"message"`
	Details       *string   `json:"details,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptImportErrorEntryDto(entry models.ImportErrorEntry) ImportErrorEntryDto {
	return ImportErrorEntryDto{
		Id:            entry.Id,
		ImportBatchId: entry.ImportBatchId,
		EntityType:    string(entry.EntityType),
		ExternalId:    entry.ExternalId,
		ErrorCode:     entry.ErrorCode,
		Message:       entry.Message,
		Details:       entry.Details,
		CreatedAt:     entry.CreatedAt,
	}
}

type RollbackResultDto struct {
	ImportBatchId string           `json:"import_batch_id"`
	DeletedCounts map[string]int64 `json:"deleted_counts"`
}

func AdaptRollbackResultDto(result models.RollbackResult) RollbackResultDto {
	return RollbackResultDto{
		ImportBatchId: result.ImportBatchId,
		DeletedCounts: pure_utils.MapKeyValue(result.DeletedCounts,
			func(entityType models.EntityType, count int64) (string, int64) {
				return string(entityType), count
			}),
	}
}
