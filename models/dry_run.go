package models

import "time"

type ImportOperation string

const (
	ImportOperationCreate ImportOperation = "create"
	ImportOperationUpdate ImportOperation = "update"
	ImportOperationSkip   ImportOperation = "skip"
)

// FieldChange records one normalization applied to one field of one record.
type FieldChange struct {
	Field      string
	Rule       string
	Original   string
	Normalized string
}

// RecordDetail is the dry-run verdict for a single row. It is never persisted:
// it drives the execution engine's record selection and the operator preview.
type RecordDetail struct {
	EntityType EntityType
	ExternalId string
	RowNumber  int
	Operation  ImportOperation
	SkipReason string
	// NormalizedValues holds the values that would be written, keyed by
	// canonical column name. Typed: string, float64, bool or nil.
	NormalizedValues map[string]any
	RawValues        map[string]string
	Changes          []FieldChange
	Errors           []ImportIssue
	Warnings         []ImportIssue
}

// DryRunResult is the full preview of a batch, exportable as CSV or JSON.
type DryRunResult struct {
	Success          bool
	TotalRecords     int
	RecordsToCreate  int
	RecordsToUpdate  int
	RecordsToSkip    int
	Errors           []ImportIssue
	Warnings         []ImportIssue
	Details          []RecordDetail
	NormalizationLog map[string]int
	Timestamp        time.Time
	Duration         time.Duration
}
