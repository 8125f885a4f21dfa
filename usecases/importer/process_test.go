package importer

import (
	"testing"

	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/assert"

	"github.com/casetrail/casetrail-backend/models"
)

func storeSet(ids ...string) *set.Set[string] {
	return set.From(ids)
}

func mustSchema(t *testing.T, entityType models.EntityType) EntitySchema {
	t.Helper()
	schema, ok := SchemaFor(entityType)
	assert.True(t, ok)
	return schema
}

func newRecordContext(rc *ReferenceContext) RecordContext {
	return RecordContext{
		FileName:        "test.csv",
		RowNumber:       2,
		SeenExternalIds: make(map[string]int),
		References:      rc,
	}
}

func TestProcessRecordNormalizesAndCreates(t *testing.T) {
	schema := mustSchema(t, models.EntityTypeClient)
	detail := ProcessRecord(schema, map[string]string{
		"external_account_id": "ACC-1",
		"name":                "  Acme Investigations  ",
		"email":               "Office@ACME.com",
		"phone":               "555-123-4567",
		"state":               "California",
	}, newRecordContext(NewReferenceContext()))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Equal(t, "ACC-1", detail.ExternalId)
	assert.Empty(t, detail.Errors)
	assert.Equal(t, "Acme Investigations", detail.NormalizedValues["name"])
	assert.Equal(t, "office@acme.com", detail.NormalizedValues["email"])
	assert.Equal(t, "(555) 123-4567", detail.NormalizedValues["phone"])
	assert.Equal(t, "CA", detail.NormalizedValues["state"])

	rules := make(map[string]bool)
	for _, change := range detail.Changes {
		rules[change.Rule] = true
	}
	assert.True(t, rules["trim"])
	assert.True(t, rules["email"])
	assert.True(t, rules["phone"])
	assert.True(t, rules["state"])
}

func TestProcessRecordMissingRequiredValue(t *testing.T) {
	schema := mustSchema(t, models.EntityTypeClient)
	detail := ProcessRecord(schema, map[string]string{
		"external_account_id": "ACC-1",
		"name":                "   ",
	}, newRecordContext(NewReferenceContext()))

	assert.Equal(t, models.ImportOperationSkip, detail.Operation)
	assert.NotEmpty(t, detail.SkipReason)
	if assert.Len(t, detail.Errors, 1) {
		assert.Equal(t, models.IssueMissingRequiredValue, detail.Errors[0].Code)
		assert.Equal(t, "name", detail.Errors[0].Column)
	}
}

func TestProcessRecordInvalidDate(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeTimeEntry)
	detail := ProcessRecord(schema, map[string]string{
		"external_time_entry_id": "TE-1",
		"external_case_id":       "CASE-1",
		"entry_date":             "someday",
		"hours":                  "2",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationSkip, detail.Operation)
	if assert.Len(t, detail.Errors, 1) {
		assert.Equal(t, models.IssueInvalidDate, detail.Errors[0].Code)
	}
}

func TestProcessRecordDuplicateExternalId(t *testing.T) {
	schema := mustSchema(t, models.EntityTypeClient)
	ctx := newRecordContext(NewReferenceContext())

	first := ProcessRecord(schema, map[string]string{
		"external_account_id": "ACC-1", "name": "Acme",
	}, ctx)
	assert.Empty(t, first.Errors)

	ctx.RowNumber = 3
	second := ProcessRecord(schema, map[string]string{
		"external_account_id": "ACC-1", "name": "Acme again",
	}, ctx)
	assert.Equal(t, models.ImportOperationSkip, second.Operation)
	if assert.Len(t, second.Errors, 1) {
		assert.Equal(t, models.IssueDuplicateExternalId, second.Errors[0].Code)
		assert.Contains(t, second.Errors[0].Message, "row 2")
	}
}

func TestProcessRecordStoreHitIsUpdate(t *testing.T) {
	rc := NewReferenceContext()
	rc.Store[models.EntityTypeClient] = storeSet("ACC-1")

	schema := mustSchema(t, models.EntityTypeClient)
	detail := ProcessRecord(schema, map[string]string{
		"external_account_id": "ACC-1", "name": "Acme",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationUpdate, detail.Operation)
}

func TestProcessRecordUnresolvedReference(t *testing.T) {
	schema := mustSchema(t, models.EntityTypeSubject)
	detail := ProcessRecord(schema, map[string]string{
		"external_subject_id": "SUBJ-1",
		"external_case_id":    "CASE-404",
		"name":                "John Doe",
	}, newRecordContext(NewReferenceContext()))

	assert.Equal(t, models.ImportOperationSkip, detail.Operation)
	if assert.Len(t, detail.Errors, 1) {
		assert.Equal(t, models.IssueUnresolvedReference, detail.Errors[0].Code)
	}
}

func TestProcessRecordReferenceResolvedWithinBatch(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeSubject)
	detail := ProcessRecord(schema, map[string]string{
		"external_subject_id": "SUBJ-1",
		"external_case_id":    "CASE-1",
		"name":                "John Doe",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)
}

func TestProcessRecordBlockingReferenceNeedsCreatedRow(t *testing.T) {
	// CASE-1 appears in the batch's files but its row is not classified for
	// creation, so a blocking reference to it must not resolve
	rc := NewReferenceContext()
	rc.AddPending(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeSubject)
	detail := ProcessRecord(schema, map[string]string{
		"external_subject_id": "SUBJ-1",
		"external_case_id":    "CASE-1",
		"name":                "John Doe",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationSkip, detail.Operation)
	if assert.Len(t, detail.Errors, 1) {
		assert.Equal(t, models.IssueUnresolvedReference, detail.Errors[0].Code)
	}
}

func TestProcessRecordContextualReferenceResolvesAgainstPendingRows(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddPending(models.EntityTypeCase, "CASE-9")

	schema := mustSchema(t, models.EntityTypeCase)
	detail := ProcessRecord(schema, map[string]string{
		"external_case_id":        "CASE-1",
		"title":                   "Surveillance",
		"status":                  "open",
		"external_parent_case_id": "CASE-9",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)
	assert.Empty(t, detail.Warnings)
}

func TestProcessRecordContextualReferenceOnlyWarns(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeTimeEntry)
	detail := ProcessRecord(schema, map[string]string{
		"external_time_entry_id": "TE-1",
		"external_case_id":       "CASE-1",
		"external_subject_id":    "SUBJ-404",
		"entry_date":             "2024-03-15",
		"hours":                  "2",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)
	if assert.Len(t, detail.Warnings, 1) {
		assert.Equal(t, models.IssueUnresolvedReference, detail.Warnings[0].Code)
	}
}

func TestProcessRecordUnusualHoursIsWarning(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeTimeEntry)
	detail := ProcessRecord(schema, map[string]string{
		"external_time_entry_id": "TE-1",
		"external_case_id":       "CASE-1",
		"entry_date":             "2024-03-15",
		"hours":                  "30",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)
	if assert.Len(t, detail.Warnings, 1) {
		assert.Equal(t, models.IssueSuspiciousValue, detail.Warnings[0].Code)
		assert.Contains(t, detail.Warnings[0].Message, "Unusually high hours: 30")
	}
}

func TestProcessRecordClosedEnumRejects(t *testing.T) {
	rc := NewReferenceContext()
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeBudgetAdjustment)
	detail := ProcessRecord(schema, map[string]string{
		"external_adjustment_id": "ADJ-1",
		"external_case_id":       "CASE-1",
		"adjustment_type":        "sideways",
		"amount":                 "100",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationSkip, detail.Operation)
	if assert.Len(t, detail.Errors, 1) {
		assert.Equal(t, models.IssueInvalidEnumValue, detail.Errors[0].Code)
	}
}

func TestProcessRecordOpenEnumOnlyWarns(t *testing.T) {
	schema := mustSchema(t, models.EntityTypeCase)
	detail := ProcessRecord(schema, map[string]string{
		"external_case_id": "CASE-1",
		"title":            "Surveillance",
		"status":           "Ongoing",
	}, newRecordContext(NewReferenceContext()))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)
	if assert.Len(t, detail.Warnings, 1) {
		assert.Equal(t, models.IssueInvalidEnumValue, detail.Warnings[0].Code)
	}
	// enum values are compared lowercased
	assert.Equal(t, "ongoing", detail.NormalizedValues["status"])
}

func TestProcessRecordPicklistFuzzyMatch(t *testing.T) {
	rc := NewReferenceContext()
	rc.Picklists[models.PicklistUpdateType] = []string{"Status Update", "Client Call"}
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeUpdate)
	detail := ProcessRecord(schema, map[string]string{
		"external_update_id": "UPD-1",
		"external_case_id":   "CASE-1",
		"update_text":        "called the client",
		"update_type":        "Status Updates",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Equal(t, "Status Update", detail.NormalizedValues["update_type"])
	if assert.Len(t, detail.Warnings, 1) {
		assert.Equal(t, models.IssueFuzzyPicklistMatch, detail.Warnings[0].Code)
	}
}

func TestProcessRecordPicklistNewValue(t *testing.T) {
	rc := NewReferenceContext()
	rc.Picklists[models.PicklistUpdateType] = []string{"Status Update"}
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeUpdate)
	detail := ProcessRecord(schema, map[string]string{
		"external_update_id": "UPD-1",
		"external_case_id":   "CASE-1",
		"update_text":        "note",
		"update_type":        "Expense Report Filed",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Equal(t, "Expense Report Filed", detail.NormalizedValues["update_type"])
	if assert.Len(t, detail.Warnings, 1) {
		assert.Equal(t, models.IssueNewPicklistValue, detail.Warnings[0].Code)
		assert.Equal(t, "New update type: Expense Report Filed", detail.Warnings[0].Message)
	}
}

func TestProcessRecordUnmatchedUserEmailWarns(t *testing.T) {
	rc := NewReferenceContext()
	rc.UsersByEmail["jane@agency.com"] = models.UserId("user-1")
	rc.AddToBatch(models.EntityTypeClient, "ACC-1")

	schema := mustSchema(t, models.EntityTypeCase)
	detail := ProcessRecord(schema, map[string]string{
		"external_case_id":    "CASE-1",
		"title":               "Surveillance",
		"status":              "open",
		"external_account_id": "ACC-1",
		"case_manager_email":  "Ghost@agency.com",
		"investigator_emails": "jane@agency.com; bob@agency.com",
	}, newRecordContext(rc))

	assert.Equal(t, models.ImportOperationCreate, detail.Operation)
	assert.Empty(t, detail.Errors)

	var codes []models.IssueCode
	for _, w := range detail.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []models.IssueCode{
		models.IssueUnmatchedUserEmail,
		models.IssueUnmatchedUserEmail,
	}, codes)
}

func TestInsertableValues(t *testing.T) {
	rc := NewReferenceContext()
	rc.UsersByEmail["jane@agency.com"] = models.UserId("user-1")
	rc.AddToBatch(models.EntityTypeClient, "ACC-1")

	schema := mustSchema(t, models.EntityTypeCase)
	detail := ProcessRecord(schema, map[string]string{
		"external_case_id":    "CASE-1",
		"title":               "Surveillance",
		"status":              "open",
		"external_account_id": "ACC-1",
		"case_manager_email":  "ghost@agency.com",
		"investigator_emails": "jane@agency.com; bob@agency.com",
		"date_opened":         "03/15/2024",
		"budget_hours":        "",
	}, newRecordContext(rc))

	values := InsertableValues(schema, detail, rc)

	// unmatched user emails are dropped, matched ones kept
	assert.NotContains(t, values, "case_manager_email")
	assert.Equal(t, "jane@agency.com", values["investigator_emails"])
	// empty and absent fields are not written
	assert.NotContains(t, values, "budget_hours")
	assert.NotContains(t, values, "notes")
	assert.Equal(t, "2024-03-15", values["date_opened"])
	assert.Equal(t, "Surveillance", values["title"])
}

func TestNewPicklistValues(t *testing.T) {
	rc := NewReferenceContext()
	rc.Picklists[models.PicklistUpdateType] = []string{"Status Update"}
	rc.AddToBatch(models.EntityTypeCase, "CASE-1")

	schema := mustSchema(t, models.EntityTypeUpdate)
	detail := ProcessRecord(schema, map[string]string{
		"external_update_id": "UPD-1",
		"external_case_id":   "CASE-1",
		"update_text":        "note",
		"update_type":        "Expense Report Filed",
	}, newRecordContext(rc))

	found := NewPicklistValues(schema, detail, rc)
	assert.Equal(t, map[models.PicklistKind][]string{
		models.PicklistUpdateType: {"Expense Report Filed"},
	}, found)

	// a value close to an existing one is not new
	detail.NormalizedValues["update_type"] = "status update"
	assert.Empty(t, NewPicklistValues(schema, detail, rc))
}
