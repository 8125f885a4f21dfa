package models

// EntityType identifies one of the record families a customer can bulk-import.
type EntityType string

const (
	EntityTypeOrganization     EntityType = "organization"
	EntityTypeClient           EntityType = "client"
	EntityTypeContact          EntityType = "contact"
	EntityTypeCase             EntityType = "case"
	EntityTypeSubject          EntityType = "subject"
	EntityTypeCaseSubjectLink  EntityType = "case_subject_link"
	EntityTypeUpdate           EntityType = "update"
	EntityTypeActivity         EntityType = "activity"
	EntityTypeTimeEntry        EntityType = "time_entry"
	EntityTypeExpense          EntityType = "expense"
	EntityTypeBudget           EntityType = "budget"
	EntityTypeBudgetAdjustment EntityType = "budget_adjustment"
)

// EntityImportOrder is the order in which entity types are materialized during
// execution. Later types reference external ids created by earlier ones, so the
// order must be a topological sort of the foreign-key graph. Rollback walks it
// in reverse.
var EntityImportOrder = []EntityType{
	EntityTypeOrganization,
	EntityTypeClient,
	EntityTypeContact,
	EntityTypeCase,
	EntityTypeSubject,
	EntityTypeCaseSubjectLink,
	EntityTypeUpdate,
	EntityTypeActivity,
	EntityTypeTimeEntry,
	EntityTypeExpense,
	EntityTypeBudget,
	EntityTypeBudgetAdjustment,
}

func (t EntityType) String() string {
	return string(t)
}

// TableName returns the database table holding imported records of this type.
func (t EntityType) TableName() string {
	switch t {
	case EntityTypeOrganization:
		return "organizations"
	case EntityTypeClient:
		return "clients"
	case EntityTypeContact:
		return "contacts"
	case EntityTypeCase:
		return "cases"
	case EntityTypeSubject:
		return "subjects"
	case EntityTypeCaseSubjectLink:
		return "case_subjects"
	case EntityTypeUpdate:
		return "case_updates"
	case EntityTypeActivity:
		return "case_activities"
	case EntityTypeTimeEntry:
		return "time_entries"
	case EntityTypeExpense:
		return "expenses"
	case EntityTypeBudget:
		return "case_budgets"
	case EntityTypeBudgetAdjustment:
		return "budget_adjustments"
	}
	return ""
}

// ExternalIdColumn returns the column used as the cross-file join key for this
// entity type. Unique per entity type within a batch.
func (t EntityType) ExternalIdColumn() string {
	switch t {
	case EntityTypeOrganization:
		return "external_org_id"
	case EntityTypeClient:
		return "external_account_id"
	case EntityTypeContact:
		return "external_contact_id"
	case EntityTypeCase:
		return "external_case_id"
	case EntityTypeSubject:
		return "external_subject_id"
	case EntityTypeCaseSubjectLink:
		return "external_link_id"
	case EntityTypeUpdate:
		return "external_update_id"
	case EntityTypeActivity:
		return "external_activity_id"
	case EntityTypeTimeEntry:
		return "external_time_entry_id"
	case EntityTypeExpense:
		return "external_expense_id"
	case EntityTypeBudget:
		return "external_budget_id"
	case EntityTypeBudgetAdjustment:
		return "external_adjustment_id"
	}
	return ""
}
