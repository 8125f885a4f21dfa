package dto

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casetrail/casetrail-backend/models"
)

func TestWriteDryRunCsv(t *testing.T) {
	result := models.DryRunResult{
		Details: []models.RecordDetail{
			{
				EntityType: models.EntityTypeClient,
				ExternalId: "ACC-1",
				Operation:  models.ImportOperationCreate,
				Changes: []models.FieldChange{
					{Field: "phone", Rule: "phone", Original: "555-123-4567", Normalized: "(555) 123-4567"},
					{Field: "state", Rule: "state", Original: "California", Normalized: "CA"},
				},
			},
			{
				EntityType: models.EntityTypeCase,
				ExternalId: "CASE-1",
				Operation:  models.ImportOperationSkip,
				SkipReason: "required value for \"title\" is missing",
			},
			{
				EntityType: models.EntityTypeTimeEntry,
				ExternalId: "TE-1",
				Operation:  models.ImportOperationUpdate,
				Warnings: []models.ImportIssue{
					{Message: "Unusually high hours: 30"},
					{Message: "some other warning"},
				},
			},
		},
	}

	var out strings.Builder
	err := WriteDryRunCsv(&out, result)
	assert.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Entity Type", "External ID", "Operation", "Status", "Field", "Original Value", "Normalized Value", "Warnings"},
		{"client", "ACC-1", "create", "ok", "phone", "555-123-4567", "(555) 123-4567", ""},
		{"client", "ACC-1", "create", "ok", "state", "California", "CA", ""},
		{"case", "CASE-1", "skip", "required value for \"title\" is missing", "", "", "", ""},
		{"time_entry", "TE-1", "update", "ok", "", "", "", "Unusually high hours: 30; some other warning"},
	}, rows)
}

func TestWriteDryRunCsvEmptyResult(t *testing.T) {
	var out strings.Builder
	err := WriteDryRunCsv(&out, models.DryRunResult{})
	assert.NoError(t, err)

	assert.Equal(t,
		"Entity Type,External ID,Operation,Status,Field,Original Value,Normalized Value,Warnings\n",
		out.String())
}
