package dto

import (
	"time"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

type ImportIssueDto struct {
	File     string `json:"file,omitempty"`
	Row      int    `json:"row,omitempty"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
}

func AdaptImportIssueDto(issue models.ImportIssue) ImportIssueDto {
	return ImportIssueDto{
		File:     issue.FileName,
		Row:      issue.Row,
		Column:   issue.Column,
		Message:  issue.Message,
		Code:     string(issue.Code),
		Severity: string(issue.Severity),
	}
}

type FieldChangeDto struct {
	Field      string `json:"field"`
	Rule       string `json:"rule"`
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

func AdaptFieldChangeDto(change models.FieldChange) FieldChangeDto {
	return FieldChangeDto(change)
}

type RecordDetailDto struct {
	EntityType string           `json:"entity_type"`
	ExternalId string           `json:"external_id"`
	RowNumber  int              `json:"row_number"`
	Operation  string           `json:"operation"`
	SkipReason string           `json:"skip_reason,omitempty"`
	Changes    []FieldChangeDto `json:"changes,omitempty"`
	Errors     []ImportIssueDto `json:"errors,omitempty"`
	Warnings   []ImportIssueDto `json:"warnings,omitempty"`
}

func AdaptRecordDetailDto(detail models.RecordDetail) RecordDetailDto {
	return RecordDetailDto{
		EntityType: string(detail.EntityType),
		ExternalId: detail.ExternalId,
		RowNumber:  detail.RowNumber,
		Operation:  string(detail.Operation),
		SkipReason: detail.SkipReason,
		Changes:    pure_utils.Map(detail.Changes, AdaptFieldChangeDto),
		Errors:     pure_utils.Map(detail.Errors, AdaptImportIssueDto),
		Warnings:   pure_utils.Map(detail.Warnings, AdaptImportIssueDto),
	}
}

type DryRunSummaryDto struct {
	Success         bool `json:"success"`
	TotalRecords    int  `json:"total_records"`
	RecordsToCreate int  `json:"records_to_create"`
	RecordsToUpdate int  `json:"records_to_update"`
	RecordsToSkip   int  `json:"records_to_skip"`
}

type DryRunResultDto struct {
	Timestamp        time.Time         `json:"timestamp"`
	DurationMs       int64             `json:"duration_ms"`
	Summary          DryRunSummaryDto  `json:"summary"`
	NormalizationLog map[string]int    `json:"normalization_log"`
	Records          []RecordDetailDto `json:"records"`
	Errors           []ImportIssueDto  `json:"errors"`
	Warnings         []ImportIssueDto  `json:"warnings"`
}

func AdaptDryRunResultDto(result models.DryRunResult) DryRunResultDto {
	return DryRunResultDto{
		Timestamp:  result.Timestamp,
		DurationMs: result.Duration.Milliseconds(),
		Summary: DryRunSummaryDto{
			Success:         result.Success,
			TotalRecords:    result.TotalRecords,
			RecordsToCreate: result.RecordsToCreate,
			RecordsToUpdate: result.RecordsToUpdate,
			RecordsToSkip:   result.RecordsToSkip,
		},
		NormalizationLog: result.NormalizationLog,
		Records:          pure_utils.Map(result.Details, AdaptRecordDetailDto),
		Errors:           pure_utils.Map(result.Errors, AdaptImportIssueDto),
		Warnings:         pure_utils.Map(result.Warnings, AdaptImportIssueDto),
	}
}
