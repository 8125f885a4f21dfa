package importer

import (
	"fmt"
	"strings"

	"github.com/casetrail/casetrail-backend/models"
)

// ParseFile runs a single uploaded file through the tokenizer, the classifier
// and the structural validator. Classification failure is terminal: no content
// parsing is attempted. Unknown columns are warnings so forward-compatible
// files don't hard-fail.
func ParseFile(file models.ImportFile) models.ParsedFile {
	entityType, ok := ClassifyFileName(file.Name)
	if !ok {
		return models.ParsedFile{
			FileName: file.Name,
			Errors: []models.ImportIssue{{
				FileName: file.Name,
				Message:  fmt.Sprintf("file name %q does not match any known entity type", file.Name),
				Code:     models.IssueUnknownFileType,
				Severity: models.IssueSeverityError,
			}},
		}
	}

	schema, _ := SchemaFor(entityType)
	raw := ParseCsv(file.Content)

	headers := make([]string, len(raw.Headers))
	headerSet := make(map[string]int, len(raw.Headers))
	for i, header := range raw.Headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		headers[i] = normalized
		headerSet[normalized] = i
	}

	parsed := models.ParsedFile{
		FileName:   file.Name,
		EntityType: entityType,
		Headers:    headers,
		RowCount:   len(raw.Rows),
	}

	for _, required := range schema.RequiredColumns() {
		if _, present := headerSet[required]; !present {
			parsed.Errors = append(parsed.Errors, models.ImportIssue{
				FileName: file.Name,
				Column:   required,
				Message:  fmt.Sprintf("required column %q is missing", required),
				Code:     models.IssueMissingRequiredColumn,
				Severity: models.IssueSeverityError,
			})
		}
	}
	for _, header := range headers {
		if header == "" {
			continue
		}
		if _, known := schema.FieldByName(header); !known {
			parsed.Warnings = append(parsed.Warnings, models.ImportIssue{
				FileName: file.Name,
				Column:   header,
				Message:  fmt.Sprintf("column %q is not part of the %s schema and will be ignored", header, entityType),
				Code:     models.IssueUnknownColumn,
				Severity: models.IssueSeverityWarning,
			})
		}
	}

	parsed.Rows = make([]map[string]string, len(raw.Rows))
	for rowIdx, row := range raw.Rows {
		record := make(map[string]string, len(headers))
		for colIdx, header := range headers {
			if header == "" {
				continue
			}
			// short rows read as empty strings for the missing trailing cells
			if colIdx < len(row) {
				record[header] = row[colIdx]
			} else {
				record[header] = ""
			}
		}
		parsed.Rows[rowIdx] = record
	}

	return parsed
}

// ParseFiles parses a whole uploaded batch, in file order.
func ParseFiles(files []models.ImportFile) []models.ParsedFile {
	parsed := make([]models.ParsedFile, len(files))
	for i, file := range files {
		parsed[i] = ParseFile(file)
	}
	return parsed
}
