package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

const (
	ruleTrim     = "trim"
	ruleDate     = "date"
	ruleDateTime = "datetime"
	ruleNumber   = "number"
	ruleBool     = "boolean"
	ruleEmail    = "email"
	rulePhone    = "phone"
	ruleState    = "state"
	rulePicklist = "picklist"
)

const unusualHoursThreshold = 24

// RecordContext carries the per-file and per-batch state a single row needs.
type RecordContext struct {
	FileName  string
	RowNumber int
	// SeenExternalIds maps external id to the row number of its first
	// occurrence. The caller shares one map between all files of the same
	// entity type, making ids unique per entity type across the batch.
	// Duplicates are flagged on the second and subsequent occurrences only.
	SeenExternalIds map[string]int
	References      *ReferenceContext
}

// ProcessRecord is the single normalization+validation+classification function
// behind both the dry-run preview and the execution path, which guarantees
// preview/execute parity. It never mutates the reference context.
func ProcessRecord(schema EntitySchema, raw map[string]string, rc RecordContext) models.RecordDetail {
	detail := models.RecordDetail{
		EntityType:       schema.EntityType,
		RowNumber:        rc.RowNumber,
		RawValues:        raw,
		NormalizedValues: make(map[string]any, len(schema.Fields)),
	}
	addIssue := func(issue models.ImportIssue) {
		issue.FileName = rc.FileName
		issue.Row = rc.RowNumber
		if issue.Severity == models.IssueSeverityError {
			detail.Errors = append(detail.Errors, issue)
		} else {
			detail.Warnings = append(detail.Warnings, issue)
		}
	}

	for _, field := range schema.Fields {
		rawValue, present := raw[field.Name]
		if !present {
			rawValue = ""
		}
		normalized, change, issue := normalizeField(field, rawValue)
		if issue != nil {
			addIssue(*issue)
		}
		if change != nil {
			detail.Changes = append(detail.Changes, *change)
		}
		detail.NormalizedValues[field.Name] = normalized

		if field.Required && isEmptyValue(normalized) {
			addIssue(models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("required value for %q is missing", field.Name),
				Code:     models.IssueMissingRequiredValue,
				Severity: models.IssueSeverityError,
			})
		}
	}

	externalId, _ := detail.NormalizedValues[schema.ExternalIdField()].(string)
	detail.ExternalId = externalId
	if externalId != "" {
		if firstRow, seen := rc.SeenExternalIds[externalId]; seen {
			addIssue(models.ImportIssue{
				Column: schema.ExternalIdField(),
				Message: fmt.Sprintf("duplicate %s %q, first seen on row %d",
					schema.ExternalIdField(), externalId, firstRow),
				Code:     models.IssueDuplicateExternalId,
				Severity: models.IssueSeverityError,
			})
		} else {
			rc.SeenExternalIds[externalId] = rc.RowNumber
		}
	}

	for _, issue := range validateEnums(schema, detail.NormalizedValues) {
		addIssue(issue)
	}
	for _, issue := range resolveUserReferences(schema, detail.NormalizedValues, rc.References) {
		addIssue(issue)
	}
	picklistChanges, picklistIssues := resolvePicklists(schema, detail.NormalizedValues, rc.References)
	detail.Changes = append(detail.Changes, picklistChanges...)
	for _, issue := range picklistIssues {
		addIssue(issue)
	}
	for _, issue := range domainChecks(schema.EntityType, detail.NormalizedValues) {
		addIssue(issue)
	}
	for _, issue := range ValidateReferences(schema.EntityType, detail.NormalizedValues, rc.References, rc.FileName, rc.RowNumber) {
		addIssue(issue)
	}

	switch {
	case len(detail.Errors) > 0:
		detail.Operation = models.ImportOperationSkip
		detail.SkipReason = detail.Errors[0].Message
	case rc.References.InStore(schema.EntityType, externalId):
		detail.Operation = models.ImportOperationUpdate
	default:
		detail.Operation = models.ImportOperationCreate
	}

	return detail
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// normalizeField converts one raw cell to its canonical typed value, recording
// the applied rule when the value actually changed. Normalization is lenient:
// it never rejects, the format checks do.
func normalizeField(field FieldSpec, rawValue string) (any, *models.FieldChange, *models.ImportIssue) {
	cleaned := pure_utils.CleanString(rawValue)
	if cleaned == nil {
		return nil, nil, nil
	}
	value := *cleaned

	change := func(rule, normalized string) *models.FieldChange {
		if normalized == rawValue {
			return nil
		}
		return &models.FieldChange{Field: field.Name, Rule: rule, Original: rawValue, Normalized: normalized}
	}

	switch field.Type {
	case FieldDate:
		normalized := pure_utils.ParseDate(value)
		if normalized == "" {
			return value, nil, &models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("%q is not a recognized date", rawValue),
				Code:     models.IssueInvalidDate,
				Severity: models.IssueSeverityError,
			}
		}
		return normalized, change(ruleDate, normalized), nil

	case FieldDateTime:
		normalized := pure_utils.ParseDateTime(value)
		if normalized == "" {
			return value, nil, &models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("%q is not a recognized timestamp", rawValue),
				Code:     models.IssueInvalidDate,
				Severity: models.IssueSeverityError,
			}
		}
		return normalized, change(ruleDateTime, normalized), nil

	case FieldNumber:
		number := pure_utils.ParseNumber(value)
		if number == nil {
			return value, nil, &models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("%q is not a number", rawValue),
				Code:     models.IssueInvalidNumber,
				Severity: models.IssueSeverityError,
			}
		}
		return *number, change(ruleNumber, strconv.FormatFloat(*number, 'f', -1, 64)), nil

	case FieldBool:
		parsed := pure_utils.ParseBool(value)
		return parsed, change(ruleBool, strconv.FormatBool(parsed)), nil

	case FieldEmail:
		normalized := pure_utils.NormalizeEmail(value)
		var issue *models.ImportIssue
		if !pure_utils.IsLikelyEmail(normalized) {
			issue = &models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("%q does not look like an email address", rawValue),
				Code:     models.IssueInvalidEmail,
				Severity: models.IssueSeverityWarning,
			}
		}
		return normalized, change(ruleEmail, normalized), issue

	case FieldEmailList:
		emails := pure_utils.SplitEmailList(value)
		normalized := strings.Join(emails, ";")
		return normalized, change(ruleEmail, normalized), nil

	case FieldPhone:
		normalized := pure_utils.NormalizePhone(value)
		return normalized, change(rulePhone, normalized), nil

	case FieldState:
		normalized := pure_utils.NormalizeUsState(value)
		return normalized, change(ruleState, normalized), nil

	case FieldEnum:
		normalized := strings.ToLower(value)
		return normalized, change(ruleTrim, normalized), nil

	default:
		return value, change(ruleTrim, value), nil
	}
}

func validateEnums(schema EntitySchema, values map[string]any) []models.ImportIssue {
	var issues []models.ImportIssue
	for _, field := range schema.Fields {
		if field.Type != FieldEnum {
			continue
		}
		value, _ := values[field.Name].(string)
		if value == "" {
			continue
		}
		valid := false
		for _, enumValue := range field.EnumValues {
			if value == enumValue {
				valid = true
				break
			}
		}
		if valid {
			continue
		}
		severity := models.IssueSeverityWarning
		if field.ClosedEnum {
			severity = models.IssueSeverityError
		}
		issues = append(issues, models.ImportIssue{
			Column: field.Name,
			Message: fmt.Sprintf("%q is not a valid %s (expected one of %s)",
				value, field.Name, strings.Join(field.EnumValues, ", ")),
			Code:     models.IssueInvalidEnumValue,
			Severity: severity,
		})
	}
	return issues
}

// resolveUserReferences checks user-email fields against the organization's
// member list. Identity resolution failures never block a batch: the field is
// simply skipped at execution time.
func resolveUserReferences(schema EntitySchema, values map[string]any, rc *ReferenceContext) []models.ImportIssue {
	var issues []models.ImportIssue
	for _, field := range schema.Fields {
		if !field.UserRef {
			continue
		}
		value, _ := values[field.Name].(string)
		if value == "" {
			continue
		}
		emails := []string{value}
		if field.Type == FieldEmailList {
			emails = strings.Split(value, ";")
		}
		for _, email := range emails {
			if _, found := rc.UsersByEmail[email]; !found {
				issues = append(issues, models.ImportIssue{
					Column: field.Name,
					Message: fmt.Sprintf("%q does not match any member of the organization; the field will be skipped",
						email),
					Code:     models.IssueUnmatchedUserEmail,
					Severity: models.IssueSeverityWarning,
				})
			}
		}
	}
	return issues
}

// resolvePicklists matches free-text vocabulary fields against the
// organization's picklist. Unknown values are not rejected: a close match is
// substituted with a warning, anything else will create a new picklist value.
func resolvePicklists(schema EntitySchema, values map[string]any, rc *ReferenceContext) ([]models.FieldChange, []models.ImportIssue) {
	var changes []models.FieldChange
	var issues []models.ImportIssue
	for _, field := range schema.Fields {
		if field.Picklist == "" {
			continue
		}
		value, _ := values[field.Name].(string)
		if value == "" {
			continue
		}
		existing := rc.Picklists[field.Picklist]
		match, _, ok := pure_utils.ClosestMatch(value, existing)
		switch {
		case ok && match == value:
			// exact match, nothing to do
		case ok:
			values[field.Name] = match
			changes = append(changes, models.FieldChange{
				Field: field.Name, Rule: rulePicklist, Original: value, Normalized: match,
			})
			issues = append(issues, models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("using closest match %q for %s %q", match, picklistLabel(field.Picklist), value),
				Code:     models.IssueFuzzyPicklistMatch,
				Severity: models.IssueSeverityWarning,
			})
		default:
			issues = append(issues, models.ImportIssue{
				Column:   field.Name,
				Message:  fmt.Sprintf("New %s: %s", picklistLabel(field.Picklist), value),
				Code:     models.IssueNewPicklistValue,
				Severity: models.IssueSeverityWarning,
			})
		}
	}
	return changes, issues
}

func picklistLabel(kind models.PicklistKind) string {
	switch kind {
	case models.PicklistUpdateType:
		return "update type"
	case models.PicklistEventSubtype:
		return "event subtype"
	}
	return string(kind)
}

// domainChecks flags values that are technically valid but suspicious enough
// to surface to the operator. Warnings only: they never demote a row to skip.
func domainChecks(entityType models.EntityType, values map[string]any) []models.ImportIssue {
	var issues []models.ImportIssue

	if entityType == models.EntityTypeTimeEntry {
		if hours, ok := values["hours"].(float64); ok && hours > unusualHoursThreshold {
			issues = append(issues, models.ImportIssue{
				Column:   "hours",
				Message:  fmt.Sprintf("Unusually high hours: %s", strconv.FormatFloat(hours, 'f', -1, 64)),
				Code:     models.IssueSuspiciousValue,
				Severity: models.IssueSeverityWarning,
			})
		}
	}
	if entityType == models.EntityTypeExpense {
		if amount, ok := values["amount"].(float64); ok {
			if amount < 0 {
				issues = append(issues, models.ImportIssue{
					Column:   "amount",
					Message:  fmt.Sprintf("negative expense amount: %s", strconv.FormatFloat(amount, 'f', -1, 64)),
					Code:     models.IssueSuspiciousValue,
					Severity: models.IssueSeverityWarning,
				})
			} else if amount > 10000 {
				issues = append(issues, models.ImportIssue{
					Column:   "amount",
					Message:  fmt.Sprintf("unusually large expense amount: %s", strconv.FormatFloat(amount, 'f', -1, 64)),
					Code:     models.IssueSuspiciousValue,
					Severity: models.IssueSeverityWarning,
				})
			}
		}
	}
	if entityType == models.EntityTypeBudget || entityType == models.EntityTypeCase {
		if amount, ok := values["budget_amount"].(float64); ok && amount < 0 {
			issues = append(issues, models.ImportIssue{
				Column:   "budget_amount",
				Message:  fmt.Sprintf("negative budget amount: %s", strconv.FormatFloat(amount, 'f', -1, 64)),
				Code:     models.IssueSuspiciousValue,
				Severity: models.IssueSeverityWarning,
			})
		}
	}
	return issues
}
