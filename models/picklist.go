package models

import "time"

// PicklistKind identifies an organization-customizable vocabulary. Values not
// present in the organization's picklist are auto-created at import time.
type PicklistKind string

const (
	PicklistUpdateType   PicklistKind = "update_type"
	PicklistEventSubtype PicklistKind = "event_subtype"
)

type PicklistValue struct {
	Id             string
	OrganizationId string
	Kind           PicklistKind
	Value          string
	CreatedAt      time.Time
}

type CreatePicklistValueInput struct {
	OrganizationId string
	Kind           PicklistKind
	Value          string
}
