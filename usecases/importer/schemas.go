package importer

import (
	"github.com/casetrail/casetrail-backend/models"
)

type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldDateTime
	FieldNumber
	FieldBool
	FieldEmail
	FieldEmailList
	FieldPhone
	FieldState
	FieldEnum
)

// FieldSpec is the validation and normalization rule for one canonical column.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
	// EnumValues is the valid-value set for FieldEnum. Closed enums reject
	// unknown values as errors; open enums are organization-customizable
	// vocabularies and only warn.
	EnumValues []string
	ClosedEnum bool
	// UserRef marks email fields resolved against the organization's member
	// list; unmatched values are skipped at execution, never blocking.
	UserRef bool
	// Picklist marks free-text vocabulary fields matched against the
	// organization's picklist, with auto-extension.
	Picklist models.PicklistKind
}

// EntitySchema is the canonical column set of one entity type.
type EntitySchema struct {
	EntityType models.EntityType
	Fields     []FieldSpec
}

func (s EntitySchema) ExternalIdField() string {
	return s.EntityType.ExternalIdColumn()
}

func (s EntitySchema) RequiredColumns() []string {
	var required []string
	for _, field := range s.Fields {
		if field.Required {
			required = append(required, field.Name)
		}
	}
	return required
}

func (s EntitySchema) FieldByName(name string) (FieldSpec, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

var caseStatusValues = []string{"open", "active", "pending", "on_hold", "closed", "archived"}

var subjectTypeValues = []string{"person", "business", "vehicle", "location", "other"}

var activityTypeValues = []string{
	"surveillance", "interview", "research", "record_retrieval",
	"travel", "report_writing", "meeting", "other",
}

var adjustmentTypeValues = []string{"increase", "decrease"}

var entitySchemas = map[models.EntityType]EntitySchema{
	models.EntityTypeOrganization: {
		EntityType: models.EntityTypeOrganization,
		Fields: []FieldSpec{
			{Name: "external_org_id", Required: true},
			{Name: "name", Required: true},
			{Name: "address"},
			{Name: "city"},
			{Name: "state", Type: FieldState},
			{Name: "zip"},
			{Name: "phone", Type: FieldPhone},
			{Name: "email", Type: FieldEmail},
			{Name: "website"},
		},
	},
	models.EntityTypeClient: {
		EntityType: models.EntityTypeClient,
		Fields: []FieldSpec{
			{Name: "external_account_id", Required: true},
			{Name: "name", Required: true},
			{Name: "email", Type: FieldEmail},
			{Name: "phone", Type: FieldPhone},
			{Name: "address"},
			{Name: "city"},
			{Name: "state", Type: FieldState},
			{Name: "zip"},
			{Name: "contact_name"},
			{Name: "account_type"},
			{Name: "notes"},
		},
	},
	models.EntityTypeContact: {
		EntityType: models.EntityTypeContact,
		Fields: []FieldSpec{
			{Name: "external_contact_id", Required: true},
			{Name: "first_name", Required: true},
			{Name: "last_name", Required: true},
			{Name: "external_account_id"},
			{Name: "email", Type: FieldEmail},
			{Name: "phone", Type: FieldPhone},
			{Name: "title"},
			{Name: "notes"},
		},
	},
	models.EntityTypeCase: {
		EntityType: models.EntityTypeCase,
		Fields: []FieldSpec{
			{Name: "external_case_id", Required: true},
			{Name: "title", Required: true},
			{Name: "status", Type: FieldEnum, Required: true, EnumValues: caseStatusValues},
			{Name: "external_account_id"},
			{Name: "external_contact_id"},
			{Name: "external_parent_case_id"},
			{Name: "case_type"},
			{Name: "case_manager_email", Type: FieldEmail, UserRef: true},
			{Name: "investigator_emails", Type: FieldEmailList, UserRef: true},
			{Name: "date_opened", Type: FieldDate},
			{Name: "date_closed", Type: FieldDate},
			{Name: "due_date", Type: FieldDate},
			{Name: "budget_amount", Type: FieldNumber},
			{Name: "budget_hours", Type: FieldNumber},
			{Name: "description"},
			{Name: "location_city"},
			{Name: "location_state", Type: FieldState},
			{Name: "notes"},
		},
	},
	models.EntityTypeSubject: {
		EntityType: models.EntityTypeSubject,
		Fields: []FieldSpec{
			{Name: "external_subject_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "name", Required: true},
			{Name: "subject_type", Type: FieldEnum, EnumValues: subjectTypeValues},
			{Name: "date_of_birth", Type: FieldDate},
			{Name: "email", Type: FieldEmail},
			{Name: "phone", Type: FieldPhone},
			{Name: "address"},
			{Name: "city"},
			{Name: "state", Type: FieldState},
			{Name: "zip"},
			{Name: "notes"},
		},
	},
	models.EntityTypeCaseSubjectLink: {
		EntityType: models.EntityTypeCaseSubjectLink,
		Fields: []FieldSpec{
			{Name: "external_link_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "external_subject_id", Required: true},
			{Name: "role"},
			{Name: "is_primary", Type: FieldBool},
		},
	},
	models.EntityTypeUpdate: {
		EntityType: models.EntityTypeUpdate,
		Fields: []FieldSpec{
			{Name: "external_update_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "update_text", Required: true},
			{Name: "update_type", Picklist: models.PicklistUpdateType},
			{Name: "update_date", Type: FieldDate},
			{Name: "author_email", Type: FieldEmail, UserRef: true},
			{Name: "is_client_visible", Type: FieldBool},
		},
	},
	models.EntityTypeActivity: {
		EntityType: models.EntityTypeActivity,
		Fields: []FieldSpec{
			{Name: "external_activity_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "activity_type", Type: FieldEnum, Required: true, EnumValues: activityTypeValues},
			{Name: "activity_date", Type: FieldDate, Required: true},
			{Name: "event_subtype", Picklist: models.PicklistEventSubtype},
			{Name: "assigned_to_email", Type: FieldEmail, UserRef: true},
			{Name: "external_subject_id"},
			{Name: "duration_hours", Type: FieldNumber},
			{Name: "location"},
			{Name: "description"},
			{Name: "completed", Type: FieldBool},
		},
	},
	models.EntityTypeTimeEntry: {
		EntityType: models.EntityTypeTimeEntry,
		Fields: []FieldSpec{
			{Name: "external_time_entry_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "entry_date", Type: FieldDate, Required: true},
			{Name: "hours", Type: FieldNumber, Required: true},
			{Name: "external_subject_id"},
			{Name: "external_activity_id"},
			{Name: "description"},
			{Name: "hourly_rate", Type: FieldNumber},
			{Name: "billable", Type: FieldBool},
			{Name: "work_type"},
		},
	},
	models.EntityTypeExpense: {
		EntityType: models.EntityTypeExpense,
		Fields: []FieldSpec{
			{Name: "external_expense_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "expense_date", Type: FieldDate, Required: true},
			{Name: "amount", Type: FieldNumber, Required: true},
			{Name: "external_subject_id"},
			{Name: "external_activity_id"},
			{Name: "category"},
			{Name: "description"},
			{Name: "billable", Type: FieldBool},
			{Name: "receipt_number"},
		},
	},
	models.EntityTypeBudget: {
		EntityType: models.EntityTypeBudget,
		Fields: []FieldSpec{
			{Name: "external_budget_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "budget_amount", Type: FieldNumber, Required: true},
			{Name: "budget_hours", Type: FieldNumber},
			{Name: "period_start", Type: FieldDate},
			{Name: "period_end", Type: FieldDate},
			{Name: "alert_threshold", Type: FieldNumber},
			{Name: "notes"},
		},
	},
	models.EntityTypeBudgetAdjustment: {
		EntityType: models.EntityTypeBudgetAdjustment,
		Fields: []FieldSpec{
			{Name: "external_adjustment_id", Required: true},
			{Name: "external_case_id", Required: true},
			{Name: "adjustment_type", Type: FieldEnum, Required: true, EnumValues: adjustmentTypeValues, ClosedEnum: true},
			{Name: "amount", Type: FieldNumber, Required: true},
			{Name: "adjustment_date", Type: FieldDate},
			{Name: "reason"},
			{Name: "approved_by_email", Type: FieldEmail, UserRef: true},
		},
	},
}

// SchemaFor returns the canonical schema of an entity type.
func SchemaFor(entityType models.EntityType) (EntitySchema, bool) {
	schema, ok := entitySchemas[entityType]
	return schema, ok
}
