package importer

import (
	"fmt"

	"github.com/hashicorp/go-set/v2"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

// ReferenceContext is everything a row needs to resolve its foreign-key-shaped
// fields: the external ids the current batch will create, the candidate ids it
// merely mentions, the external ids already imported for the organization, the
// organization's member emails and its picklist vocabularies.
type ReferenceContext struct {
	// Batch holds ids of rows classified for creation. Blocking references
	// only resolve against Batch and Store: a row that will be skipped, or
	// that sits in a structurally invalid file, must not anchor a sibling.
	Batch map[models.EntityType]*set.Set[string]
	// Pending holds ids of every row of every structurally valid file,
	// before classification. Contextual (warning-severity) references may
	// resolve against it.
	Pending      map[models.EntityType]*set.Set[string]
	Store        map[models.EntityType]*set.Set[string]
	UsersByEmail map[string]models.UserId
	Picklists    map[models.PicklistKind][]string
}

func NewReferenceContext() *ReferenceContext {
	return &ReferenceContext{
		Batch:        make(map[models.EntityType]*set.Set[string]),
		Pending:      make(map[models.EntityType]*set.Set[string]),
		Store:        make(map[models.EntityType]*set.Set[string]),
		UsersByEmail: make(map[string]models.UserId),
		Picklists:    make(map[models.PicklistKind][]string),
	}
}

// Known reports whether an external id resolves, either to a record the
// current batch will create or to one already imported in a prior batch.
func (rc *ReferenceContext) Known(entityType models.EntityType, externalId string) bool {
	if ids, ok := rc.Batch[entityType]; ok && ids.Contains(externalId) {
		return true
	}
	return rc.InStore(entityType, externalId)
}

// PendingInBatch reports whether an external id appears on any row of the
// batch's valid files, whether or not that row survives validation.
func (rc *ReferenceContext) PendingInBatch(entityType models.EntityType, externalId string) bool {
	ids, ok := rc.Pending[entityType]
	return ok && ids.Contains(externalId)
}

// InStore reports whether an external id was already imported in a prior batch.
func (rc *ReferenceContext) InStore(entityType models.EntityType, externalId string) bool {
	ids, ok := rc.Store[entityType]
	return ok && ids.Contains(externalId)
}

// AddToBatch registers an external id as destined for creation in the current
// batch.
func (rc *ReferenceContext) AddToBatch(entityType models.EntityType, externalId string) {
	if rc.Batch[entityType] == nil {
		rc.Batch[entityType] = set.New[string](16)
	}
	rc.Batch[entityType].Insert(externalId)
}

// AddPending registers an external id as mentioned by the current batch.
func (rc *ReferenceContext) AddPending(entityType models.EntityType, externalId string) {
	if rc.Pending[entityType] == nil {
		rc.Pending[entityType] = set.New[string](16)
	}
	rc.Pending[entityType].Insert(externalId)
}

// RegisterPendingIds collects the external ids of every row of every
// structurally valid file, keyed by entity type. Ids are candidates only:
// each moves to the batch map once its row is classified for creation, and
// blocking references never resolve against a candidate alone. Files failing
// structural validation contribute nothing, because none of their rows will
// execute.
func RegisterPendingIds(files []models.ParsedFile, rc *ReferenceContext) {
	for _, file := range files {
		if file.EntityType == "" || !file.IsValid() {
			continue
		}
		idColumn := file.EntityType.ExternalIdColumn()
		for _, row := range file.Rows {
			if id := pure_utils.CleanString(row[idColumn]); id != nil {
				rc.AddPending(file.EntityType, *id)
			}
		}
	}
}

type referenceRule struct {
	Field    string
	Target   models.EntityType
	Severity models.IssueSeverity
}

// The reference policy. A missing referent is only an issue when the id is
// absent from both the batch and the store. Case to parent case is a warning
// because a self-referencing hierarchy may resolve in a later batch; subject
// and activity references on time entries and expenses are contextual only.
var referenceRules = map[models.EntityType][]referenceRule{
	models.EntityTypeCase: {
		{Field: "external_account_id", Target: models.EntityTypeClient, Severity: models.IssueSeverityError},
		{Field: "external_contact_id", Target: models.EntityTypeContact, Severity: models.IssueSeverityError},
		{Field: "external_parent_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityWarning},
	},
	models.EntityTypeSubject: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
	},
	models.EntityTypeCaseSubjectLink: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
		{Field: "external_subject_id", Target: models.EntityTypeSubject, Severity: models.IssueSeverityError},
	},
	models.EntityTypeUpdate: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
	},
	models.EntityTypeActivity: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
		{Field: "external_subject_id", Target: models.EntityTypeSubject, Severity: models.IssueSeverityWarning},
	},
	models.EntityTypeTimeEntry: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
		{Field: "external_subject_id", Target: models.EntityTypeSubject, Severity: models.IssueSeverityWarning},
		{Field: "external_activity_id", Target: models.EntityTypeActivity, Severity: models.IssueSeverityWarning},
	},
	models.EntityTypeExpense: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
		{Field: "external_subject_id", Target: models.EntityTypeSubject, Severity: models.IssueSeverityWarning},
		{Field: "external_activity_id", Target: models.EntityTypeActivity, Severity: models.IssueSeverityWarning},
	},
	models.EntityTypeBudget: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
	},
	models.EntityTypeBudgetAdjustment: {
		{Field: "external_case_id", Target: models.EntityTypeCase, Severity: models.IssueSeverityError},
	},
}

// ValidateReferences checks every declared reference field of a record against
// the reference context. Empty reference fields are not checked here: whether
// they were allowed to be empty is the row validator's concern.
func ValidateReferences(
	entityType models.EntityType,
	values map[string]any,
	rc *ReferenceContext,
	fileName string,
	rowNumber int,
) []models.ImportIssue {
	var issues []models.ImportIssue
	for _, rule := range referenceRules[entityType] {
		id, _ := values[rule.Field].(string)
		if id == "" {
			continue
		}
		if rc.Known(rule.Target, id) {
			continue
		}
		// contextual references may point at rows that are still being
		// evaluated; only blocking references require a created row
		if rule.Severity == models.IssueSeverityWarning && rc.PendingInBatch(rule.Target, id) {
			continue
		}
		issues = append(issues, models.ImportIssue{
			FileName: fileName,
			Row:      rowNumber,
			Column:   rule.Field,
			Message: fmt.Sprintf("%s %q does not match any %s in this batch or a previous import",
				rule.Field, id, rule.Target),
			Code:     models.IssueUnresolvedReference,
			Severity: rule.Severity,
		})
	}
	return issues
}
