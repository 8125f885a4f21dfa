package dto

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

var dryRunCsvHeader = []string{
	"Entity Type", "External ID", "Operation", "Status",
	"Field", "Original Value", "Normalized Value", "Warnings",
}

// WriteDryRunCsv flattens a dry-run preview for spreadsheet review: one line
// per field change, and a single line for records that needed no changes.
func WriteDryRunCsv(w io.Writer, result models.DryRunResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(dryRunCsvHeader); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}

	for _, detail := range result.Details {
		status := "ok"
		if detail.Operation == models.ImportOperationSkip {
			status = detail.SkipReason
		}
		warnings := strings.Join(
			pure_utils.Map(detail.Warnings, func(issue models.ImportIssue) string {
				return issue.Message
			}), "; ")

		if len(detail.Changes) == 0 {
			err := writer.Write([]string{
				string(detail.EntityType), detail.ExternalId,
				string(detail.Operation), status, "", "", "", warnings,
			})
			if err != nil {
				return errors.Wrap(err, "could not write csv record")
			}
			continue
		}
		for _, change := range detail.Changes {
			err := writer.Write([]string{
				string(detail.EntityType), detail.ExternalId,
				string(detail.Operation), status,
				change.Field, change.Original, change.Normalized, warnings,
			})
			if err != nil {
				return errors.Wrap(err, "could not write csv record")
			}
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "could not flush csv output")
}
